package csvutil

import (
	"strings"
	"testing"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(
		[]string{"Name", "Amount"},
		[][]string{
			{"Electricity", "4500.00"},
			{"Beans, premium", "1200.50"},
		},
	)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := string(data)
	want := "Name,Amount\r\nElectricity,4500.00\r\n\"Beans, premium\",1200.50\r\n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestMarshalHeaderOnly(t *testing.T) {
	data, err := Marshal([]string{"Name"}, nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "Name\r\n" {
		t.Fatalf("unexpected output %q", string(data))
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{18000, "180.00"},
		{18050, "180.50"},
		{5, "0.05"},
		{0, "0.00"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.paise); got != c.want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", c.paise, got, c.want)
		}
	}
}

func TestMarshalQuotesNewlines(t *testing.T) {
	data, err := Marshal([]string{"Notes"}, [][]string{{"line one\nline two"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "\"line one") || !strings.Contains(got, "line two\"") {
		t.Fatalf("expected quoted multi-line field, got %q", got)
	}
}
