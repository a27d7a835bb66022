package naming

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

func TestParseTable(t *testing.T) {
	input := "red,green,blue,name\n255,0,0,Red\n0,128,0,Green\n"
	entries, err := ParseTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0] != (Entry{R: 255, Name: "Red"}) {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1] != (Entry{G: 128, Name: "Green"}) {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParseTableNoHeader(t *testing.T) {
	entries, err := ParseTable(strings.NewReader("10,20,30,Dusk\n"))
	if err != nil {
		t.Fatalf("ParseTable returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Dusk" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestParseTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "red,green,blue,name\n"},
		{"channel out of range", "300,0,0,Red\n"},
		{"non-numeric channel", "red,0,0,Red\n10,zz,30,Dusk\n"},
		{"empty name", "10,20,30,\n"},
		{"wrong field count", "10,20,30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestBuiltinTable(t *testing.T) {
	entries, err := BuiltinTable()
	if err != nil {
		t.Fatalf("BuiltinTable returned error: %v", err)
	}
	if len(entries) < 100 {
		t.Errorf("Bundled table suspiciously small: %d entries", len(entries))
	}

	seen := map[[3]uint8]bool{}
	for _, e := range entries {
		key := [3]uint8{e.R, e.G, e.B}
		if seen[key] {
			t.Errorf("Duplicate table entry for rgb(%d, %d, %d)", e.R, e.G, e.B)
		}
		seen[key] = true
	}
}

func TestIndexNearestExactHit(t *testing.T) {
	entries := []Entry{
		{R: 255, Name: "Red"},
		{G: 255, Name: "Green"},
		{B: 255, Name: "Blue"},
	}
	index, err := NewIndex(entries)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	for _, e := range entries {
		if got := index.Nearest(colour.RGB{R: e.R, G: e.G, B: e.B}); got != e.Name {
			t.Errorf("Nearest(%d, %d, %d) = %q, want %q", e.R, e.G, e.B, got, e.Name)
		}
	}
}

func TestIndexNearestTieBreak(t *testing.T) {
	// (100, 0, 0) and (110, 0, 0) are equidistant from (105, 0, 0); the
	// earlier row must win regardless of tree layout.
	entries := []Entry{
		{R: 100, Name: "First"},
		{R: 110, Name: "Second"},
		{G: 200, Name: "Faraway"},
	}
	index, err := NewIndex(entries)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	if got := index.Nearest(colour.RGB{R: 105}); got != "First" {
		t.Errorf("Nearest tie resolved to %q, want %q", got, "First")
	}

	// Reversed row order flips the winner.
	reversed := []Entry{
		{R: 110, Name: "Second"},
		{R: 100, Name: "First"},
		{G: 200, Name: "Faraway"},
	}
	index, err = NewIndex(reversed)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}
	if got := index.Nearest(colour.RGB{R: 105}); got != "Second" {
		t.Errorf("Nearest tie resolved to %q, want %q", got, "Second")
	}
}

func TestNewIndexEmpty(t *testing.T) {
	if _, err := NewIndex(nil); err == nil {
		t.Error("Expected error for empty entry list")
	}
}

func TestIndexSaveLoadRoundTrip(t *testing.T) {
	entries, err := BuiltinTable()
	if err != nil {
		t.Fatalf("BuiltinTable returned error: %v", err)
	}
	original, err := NewIndex(entries)
	if err != nil {
		t.Fatalf("NewIndex returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nearest_color.idx")
	if err := original.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex returned error: %v", err)
	}
	if loaded.Len() != original.Len() {
		t.Fatalf("Loaded %d entries, want %d", loaded.Len(), original.Len())
	}

	queries := []colour.RGB{
		{R: 11, G: 122, B: 233},
		{R: 50},
		{G: 50},
		{B: 50},
		{R: 50, G: 50, B: 50},
		{R: 200, G: 100, B: 17},
	}
	for _, q := range queries {
		want := original.Nearest(q)
		if got := loaded.Nearest(q); got != want {
			t.Errorf("Loaded index Nearest(%v) = %q, original %q", q, got, want)
		}
	}
}

func TestLoadIndexErrors(t *testing.T) {
	if _, err := LoadIndex(filepath.Join(t.TempDir(), "missing.idx")); err == nil {
		t.Error("Expected error for missing artifact")
	}

	if _, err := ReadIndex(strings.NewReader("not an xz stream")); err == nil {
		t.Error("Expected error for malformed artifact stream")
	}
}
