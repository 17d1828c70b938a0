package state

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/form"
)

// FileStore persists answers as a flat TOML file, one key per field.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. A missing or unparseable file yields an empty
// snapshot and no error: stale state must never block startup. Entries
// that are not TOML primitives are skipped.
func (s *FileStore) Load() (form.Snapshot, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(s.path, &raw); err != nil {
		return form.Snapshot{}, nil
	}
	snap := make(form.Snapshot, len(raw))
	for name, val := range raw {
		v, ok := fromPrimitive(val)
		if !ok {
			continue
		}
		snap[name] = v
	}
	return snap, nil
}

// Save writes the snapshot with user-only permissions, creating the parent
// directory when needed. Null answers are not written; they read back as
// "use the default".
func (s *FileStore) Save(snap form.Snapshot) error {
	doc := make(map[string]any, len(snap))
	for name, v := range snap {
		if p, ok := toPrimitive(v); ok {
			doc[name] = p
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(doc)
}

func fromPrimitive(v any) (cty.Value, bool) {
	switch t := v.(type) {
	case string:
		return cty.StringVal(t), true
	case int64:
		return cty.NumberIntVal(t), true
	case float64:
		return cty.NumberFloatVal(t), true
	case bool:
		return cty.BoolVal(t), true
	}
	return cty.NilVal, false
}

func toPrimitive(v cty.Value) (any, bool) {
	if v == cty.NilVal || v.IsNull() {
		return nil, false
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), true
	case cty.Bool:
		return v.True(), true
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			n, _ := bf.Int64()
			return n, true
		}
		f, _ := bf.Float64()
		return f, true
	}
	return nil, false
}

var _ Store = (*FileStore)(nil)
