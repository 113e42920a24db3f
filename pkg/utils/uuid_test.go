package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Classic Cappuccino", "classic-cappuccino"},
		{"Iced Hazelnut Latte", "iced-hazelnut-latte"},
		{"Cafe Shillong Special", "cafe-shillong-special"},
		{"Takeaway Cups (12oz)", "takeaway-cups-12oz"},
		{"  Extra   Spaces  ", "extra-spaces"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestShortCode(t *testing.T) {
	code := ShortCode("EXP")
	if !strings.HasPrefix(code, "EXP-") {
		t.Fatalf("expected EXP- prefix, got %q", code)
	}
	if len(code) != len("EXP-")+8 {
		t.Fatalf("unexpected length for %q", code)
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("expected uppercase code, got %q", code)
	}
}
