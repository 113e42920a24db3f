package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentInit(t *testing.T) {
	d := NewDocument(32)
	if !bytes.HasPrefix(d.Bytes(), []byte{ESC, '@'}) {
		t.Fatal("document must start with the initialize command")
	}
	if d.Width() != 32 {
		t.Fatalf("width = %d, want 32", d.Width())
	}
}

func TestDocumentDefaultWidth(t *testing.T) {
	if got := NewDocument(0).Width(); got != 32 {
		t.Fatalf("width = %d, want 32", got)
	}
}

func TestKeyValueFillsWidth(t *testing.T) {
	d := NewDocument(32)
	before := len(d.Bytes())
	d.KeyValue("TOTAL", "580.00")

	line := string(d.Bytes()[before:])
	line = strings.TrimSuffix(line, "\n")
	if len(line) != 32 {
		t.Fatalf("line width = %d, want 32: %q", len(line), line)
	}
	if !strings.HasPrefix(line, "TOTAL") || !strings.HasSuffix(line, "580.00") {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestColumnsTruncatesLongNames(t *testing.T) {
	d := NewDocument(32)
	before := len(d.Bytes())
	d.Columns("An Extremely Long Menu Item Name That Overflows", 2, "360.00")

	line := strings.TrimSuffix(string(d.Bytes()[before:]), "\n")
	if len(line) != 32 {
		t.Fatalf("line width = %d, want 32: %q", len(line), line)
	}
	if !strings.HasSuffix(line, "  2 360.00") {
		t.Fatalf("unexpected columns %q", line)
	}
}

func TestSeparator(t *testing.T) {
	d := NewDocument(32)
	before := len(d.Bytes())
	d.Separator('-')

	line := strings.TrimSuffix(string(d.Bytes()[before:]), "\n")
	if line != strings.Repeat("-", 32) {
		t.Fatalf("unexpected separator %q", line)
	}
}
