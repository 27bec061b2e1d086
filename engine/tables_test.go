package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cnchess/cnboard"
)

func TestExportLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.yaml")

	want := DefaultTables()
	if err := ExportConfig(want, path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadTables(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range pieceList {
		if got.Material(p) != want.Material(p) {
			t.Fatalf("piece %c: material %d, want %d", p, got.Material(p), want.Material(p))
		}
		for r := 0; r < cnboard.RealRows; r++ {
			for c := 0; c < cnboard.RealCols; c++ {
				if got.Position(p, r, c) != want.Position(p, r, c) {
					t.Fatalf("piece %c at (%d,%d): position %d, want %d",
						p, r, c, got.Position(p, r, c), want.Position(p, r, c))
				}
			}
		}
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("LoadTables on a missing file did not fail")
	}
}

func TestLoadTablesMissingMaterial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.yaml")
	if err := ExportConfig(DefaultTables(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Strip the material section entirely; viper writes keys in sorted
	// order, so everything before "position:" is the material block.
	idx := bytes.Index(data, []byte("position:"))
	if idx < 0 {
		t.Fatalf("exported config has no position section")
	}
	if err := os.WriteFile(path, data[idx:], 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTables(path); err == nil {
		t.Fatalf("LoadTables with missing material values did not fail")
	}
}

func TestLoadTablesBadGridShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.yaml")

	cfg := "material:\n"
	for _, p := range pieceList {
		cfg += "  " + pieceKey(p) + ": 1\n"
	}
	cfg += "position:\n"
	for _, p := range pieceList {
		// Grids with a single row instead of ten.
		cfg += "  " + pieceKey(p) + ": [[0, 0, 0, 0, 0, 0, 0, 0, 0]]\n"
	}
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTables(path); err == nil {
		t.Fatalf("LoadTables with misshapen grids did not fail")
	}
}

