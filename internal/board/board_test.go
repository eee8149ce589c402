package board

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"wordrush.gg/wordrush/internal/grid"
)

func writeBoard(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write board file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeBoard(t, t.TempDir(), "mini.json", `{"name": "Mini", "rows": ["cat", "ors", "wde"]}`)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("Expected 3x3 board, got %dx%d", g.Rows(), g.Cols())
	}
	// Rows are uppercased on load.
	if got := g.Letter(grid.Position{Row: 0, Col: 0}); got != 'C' {
		t.Errorf("Letter(0,0) = %q, want 'C'", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		body string
	}{
		{"no rows", `{"name": "Empty"}`},
		{"blank row", `{"rows": ["CAT", "   ", "WDE"]}`},
		{"ragged rows", `{"rows": ["CAT", "OR"]}`},
		{"malformed", `{"rows": [`},
	}
	for _, tc := range cases {
		path := writeBoard(t, dir, tc.name+".json", tc.body)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file: expected error, got nil")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeBoard(t, dir, "alpha.json", `{"name": "Alpha Board", "rows": ["AB", "CD"]}`)
	writeBoard(t, dir, "beta.json", `{"rows": ["AB", "CD"]}`)
	writeBoard(t, dir, "notes.txt", "not a board")
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	entries, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(entries), entries)
	}
	if entries[0].Name != "Alpha Board" {
		t.Errorf("entries[0].Name = %q, want the in-file display name", entries[0].Name)
	}
	// Files without a display name fall back to the filename stem.
	if entries[1].Name != "beta" {
		t.Errorf("entries[1].Name = %q, want \"beta\"", entries[1].Name)
	}
}

func TestScanDirMissing(t *testing.T) {
	entries, err := ScanDir(filepath.Join(t.TempDir(), "no-such-dir"))
	if err != nil {
		t.Fatalf("ScanDir on a missing directory failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestGenerate(t *testing.T) {
	g := Generate(rand.New(rand.NewSource(7)), 4, 5)
	if g.Rows() != 4 || g.Cols() != 5 {
		t.Fatalf("Expected 4x5 board, got %dx%d", g.Rows(), g.Cols())
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			l := g.Letter(grid.Position{Row: row, Col: col})
			if l < 'A' || l > 'Z' {
				t.Errorf("Letter(%d,%d) = %q, want A-Z", row, col, l)
			}
		}
	}
}

func TestGenerateSeedDeterminism(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(99)), 4, 4)
	b := Generate(rand.New(rand.NewSource(99)), 4, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			p := grid.Position{Row: row, Col: col}
			if a.Letter(p) != b.Letter(p) {
				t.Fatalf("Same seed produced different boards at %v", p)
			}
		}
	}
}
