package orca

import (
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

func TestFields_BuildSchema(t *testing.T) {
	sc, err := schema.New(Fields()...)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	if sc.Len() != len(Fields()) {
		t.Errorf("schema has %d fields, catalog has %d", sc.Len(), len(Fields()))
	}
}

func TestFields_Defaults(t *testing.T) {
	sc, err := schema.New(Fields()...)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	want := map[string]cty.Value{
		"theory":            cty.StringVal("DFT"),
		"task":              cty.StringVal("Opt+Freq"),
		"dft:family":        cty.StringVal("GGA"),
		"dft:gga":           cty.StringVal("BLYP"),
		"basis:family":      cty.StringVal("def2"),
		"basis:def2":        cty.StringVal("TZP"),
		"numerical:quality": cty.StringVal("Good"),
		"relativity":        cty.StringVal(schema.NoneLabel),
		"dispersion":        cty.StringVal("D4"),
		"nprocs":            cty.NumberIntVal(6),
		"memory":            cty.NumberIntVal(12000),
		"solvation":         cty.True,
		"solvation:model":   cty.StringVal("SMD"),
		"geom:maxiter":      cty.NumberIntVal(30),
		"geom:trust":        cty.NumberFloatVal(0.2),
		"freq:scaling":      cty.NumberFloatVal(1.0),
		"output:level":      cty.StringVal("Small"),
		"scf:maxiter":       cty.StringVal("Auto"),
		"geom:step":         cty.StringVal("Auto"),
	}
	for name, v := range want {
		f, ok := sc.Lookup(name)
		if !ok {
			t.Errorf("field %q missing from catalog", name)
			continue
		}
		if !f.Default.RawEquals(v) {
			t.Errorf("%s default = %v, want %v", name, f.Default, v)
		}
	}
}

func TestFields_Kinds(t *testing.T) {
	sc, err := schema.New(Fields()...)
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	want := map[string]schema.Kind{
		"short description": schema.KindString,
		"charge":            schema.KindInteger,
		"unrestricted":      schema.KindBoolean,
		"geom:trust":        schema.KindFloat,
		"freq:scaling":      schema.KindFloat,
		"numerical:quality": schema.KindString,
	}
	for name, k := range want {
		f, _ := sc.Lookup(name)
		if f.Kind != k {
			t.Errorf("%s kind = %v, want %v", name, f.Kind, k)
		}
	}
}

func TestFields_FreshSliceEachCall(t *testing.T) {
	first := Fields()
	first[0].Name = "clobbered"
	if got := Fields()[0].Name; got != "short description" {
		t.Errorf("first field = %q, catalog must not share state across calls", got)
	}
}

func TestFields_MergeOverlay(t *testing.T) {
	overlay := []schema.Field{
		{Name: "memory", Default: cty.NumberIntVal(16000)},
		{Name: "cluster queue", Domain: schema.Labels("short", "long")},
	}
	sc, err := schema.New(schema.Merge(Fields(), overlay)...)
	if err != nil {
		t.Fatalf("schema.New after merge: %v", err)
	}
	f, _ := sc.Lookup("memory")
	if !f.Default.RawEquals(cty.NumberIntVal(16000)) {
		t.Errorf("memory default = %v, want 16000", f.Default)
	}
	if _, ok := sc.Lookup("cluster queue"); !ok {
		t.Error("overlay field missing after merge")
	}
}
