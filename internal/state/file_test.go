package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/form"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.toml"))
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml"), 0o600); err != nil {
		t.Fatal(err)
	}
	snap, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v, stale state must never block startup", err)
	}
	if len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "answers.toml"))
	in := form.Snapshot{
		"theory":       cty.StringVal("DFT"),
		"nprocs":       cty.NumberIntVal(6),
		"geom:trust":   cty.NumberFloatVal(0.25),
		"unrestricted": cty.True,
		"solvation":    cty.False,
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("loaded %d answers, want %d", len(out), len(in))
	}
	for name, want := range in {
		got, ok := out[name]
		if !ok {
			t.Errorf("%s missing after round trip", name)
			continue
		}
		if !got.RawEquals(want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestFileStore_SaveSkipsNulls(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "answers.toml"))
	err := s.Save(form.Snapshot{
		"theory": cty.StringVal("HF"),
		"spin":   cty.NullVal(cty.Number),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, _ := s.Load()
	if _, ok := out["spin"]; ok {
		t.Error("null answers should not be persisted")
	}
	if _, ok := out["theory"]; !ok {
		t.Error("theory missing after save")
	}
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "answers.toml")
	s := NewFileStore(path)
	if err := s.Save(form.Snapshot{"theory": cty.StringVal("DFT")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "answers.toml"))
	if err := s.Save(form.Snapshot{"a": cty.StringVal("1"), "b": cty.StringVal("2")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(form.Snapshot{"a": cty.StringVal("3")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, _ := s.Load()
	if len(out) != 1 {
		t.Errorf("snapshot = %v, want only the last save", out)
	}
	if got := out["a"]; !got.RawEquals(cty.StringVal("3")) {
		t.Errorf("a = %v, want 3", got)
	}
}
