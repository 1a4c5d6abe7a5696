package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestOpenDefault(t *testing.T) {
	lvl, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\") failed: %v", err)
	}

	if lvl.ID != DefaultID {
		t.Errorf("ID = %q, expected %q", lvl.ID, DefaultID)
	}
	if len(lvl.Targets) != 3 {
		t.Fatalf("expected 3 targets, got %d", len(lvl.Targets))
	}
	if len(lvl.Obstacles) != 3 {
		t.Errorf("expected 3 obstacles, got %d", len(lvl.Obstacles))
	}

	// Targets are spaced 300 apart starting at 1920/3 + target width.
	for i, target := range lvl.Targets {
		wantX := 740 + float64(i)*300
		if target.Box.X != wantX || target.Box.Y != 750 {
			t.Errorf("target %d at (%v, %v), expected (%v, 750)", i, target.Box.X, target.Box.Y, wantX)
		}
		if target.Kind != "cow" {
			t.Errorf("target %d kind = %q, expected default \"cow\"", i, target.Kind)
		}
	}
	if lvl.FilePath != "" {
		t.Errorf("embedded level should have no file path, got %q", lvl.FilePath)
	}
}

func TestOpenByIDAndPath(t *testing.T) {
	if _, err := Open("CLASSIC"); err != nil {
		t.Errorf("Open(CLASSIC) should match case-insensitively: %v", err)
	}

	lvl, err := Open(testdataPath("tower.toml"))
	if err != nil {
		t.Fatalf("Open(tower.toml) failed: %v", err)
	}
	if lvl.ID != "tower" || len(lvl.Targets) != 4 {
		t.Errorf("tower: id=%q targets=%d, expected tower with 4", lvl.ID, len(lvl.Targets))
	}
	if lvl.Targets[0].Name != "cow-top" || lvl.Targets[3].Name != "cow-far" {
		t.Error("target order should follow the file")
	}
	if lvl.Obstacles[0].Kind != "ice" {
		t.Errorf("obstacle kind = %q, expected ice", lvl.Obstacles[0].Kind)
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want error
	}{
		{"unknown id", "moon", ErrNotFound},
		{"unsupported extension", testdataPath("notes.txt"), ErrUnsupportedFormat},
		{"no targets", testdataPath("empty.yaml"), ErrInvalid},
		{"missing file", testdataPath("missing.yaml"), os.ErrNotExist},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.ref)
			if !errors.Is(err, tc.want) {
				t.Errorf("Open(%q) error = %v, expected %v", tc.ref, err, tc.want)
			}
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader("testdata")

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// empty.yaml is invalid and notes.txt is not a level.
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[0].ID != "barn" || lvls[1].ID != "tower" {
		t.Errorf("levels not sorted by ID: %s, %s", lvls[0].ID, lvls[1].ID)
	}
	if lvls[0].Obstacles[0].Kind != "stone" {
		t.Errorf("barn obstacle kind = %q, expected stone", lvls[0].Obstacles[0].Kind)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader("testdata")

	lvl, err := loader.LoadByID("barn")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Barn" || len(lvl.Targets) != 2 {
		t.Errorf("barn = %q with %d targets, expected Barn with 2", lvl.Name, len(lvl.Targets))
	}
	if lvl.FilePath != testdataPath("barn.yaml") {
		t.Errorf("FilePath = %q, expected %q", lvl.FilePath, testdataPath("barn.yaml"))
	}

	if _, err := loader.LoadByID("empty"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID(empty) error = %v, expected ErrNotFound", err)
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll(); err == nil {
		t.Error("LoadAll on a missing directory should fail")
	}
}

func TestValidateRejectsZeroSize(t *testing.T) {
	lvl, err := Open("")
	if err != nil {
		t.Fatal(err)
	}
	lvl.Obstacles[1].Box.W = 0

	if err := lvl.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() error = %v, expected ErrInvalid", err)
	}
}
