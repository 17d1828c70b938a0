// Package manifest loads schema overlays from HCL files. An overlay is a
// list of field blocks that amend the built-in catalog (or add to it);
// merging happens by name through schema.Merge, and the result is still
// subject to schema.New validation.
//
//	field "memory" {
//	  default = 16000
//	}
//
//	field "site:queue" {
//	  help = "Which cluster queue to target."
//	  option { label = "short" }
//	  option { label = "long" }
//	  switch {
//	    field  = "theory"
//	    equals = "DFT"
//	  }
//	}
package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

// File is the root of an overlay document.
type File struct {
	Fields []FieldBlock `hcl:"field,block"`
}

// FieldBlock amends or adds one field descriptor. Unset attributes leave
// the corresponding part of an existing field untouched.
type FieldBlock struct {
	Name     string        `hcl:"name,label"`
	Text     string        `hcl:"text,optional"`
	Help     string        `hcl:"help,optional"`
	Kind     string        `hcl:"kind,optional"`
	Widget   string        `hcl:"widget,optional"`
	Tab      string        `hcl:"tab,optional"`
	Group    string        `hcl:"group,optional"`
	Default  *cty.Value    `hcl:"default,optional"`
	Options  []OptionBlock `hcl:"option,block"`
	Switches []SwitchBlock `hcl:"switch,block"`
}

// OptionBlock is one domain entry: the label shown to the user and,
// optionally, the value emitted in its place. Setting drop makes the label
// emit nothing.
type OptionBlock struct {
	Label string     `hcl:"label"`
	Emit  *cty.Value `hcl:"emit,optional"`
	Drop  bool       `hcl:"drop,optional"`
}

// SwitchBlock is one visibility scenario on a single field. With equals the
// answer must match it, with any it must be one of the listed labels, and
// with neither the answer just has to be truthy. Multiple switch blocks
// are alternatives: the field shows when any of them holds.
type SwitchBlock struct {
	Field  string   `hcl:"field"`
	Equals *string  `hcl:"equals,optional"`
	Any    []string `hcl:"any,optional"`
}

// Load parses an overlay file into partial field descriptors ready for
// schema.Merge. A malformed file is a hard error; overlays are
// configuration the user asked for, not best-effort state.
func Load(path string) ([]schema.Field, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	var root File
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %w", path, diags)
	}
	fields := make([]schema.Field, 0, len(root.Fields))
	for _, fb := range root.Fields {
		f, err := fb.field()
		if err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", path, fb.Name, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (fb FieldBlock) field() (schema.Field, error) {
	f := schema.Field{
		Name:   fb.Name,
		Text:   fb.Text,
		Help:   fb.Help,
		Kind:   schema.Kind(fb.Kind),
		Widget: schema.Widget(fb.Widget),
		Tab:    fb.Tab,
		Group:  fb.Group,
	}
	if f.Kind != "" && !f.Kind.IsValid() {
		return schema.Field{}, fmt.Errorf("unknown kind %q", fb.Kind)
	}
	if f.Widget != "" && !f.Widget.IsValid() {
		return schema.Field{}, fmt.Errorf("unknown widget %q", fb.Widget)
	}
	if fb.Default != nil {
		f.Default = *fb.Default
	}

	if len(fb.Options) > 0 {
		entries := make([]schema.Entry, len(fb.Options))
		translated := false
		labels := make([]string, len(fb.Options))
		for i, opt := range fb.Options {
			labels[i] = opt.Label
			val := cty.StringVal(opt.Label)
			e := schema.Entry{Value: val, Emit: val}
			switch {
			case opt.Drop && opt.Emit != nil:
				return schema.Field{}, fmt.Errorf("option %q: emit and drop are mutually exclusive", opt.Label)
			case opt.Drop:
				e.Emit = cty.NullVal(cty.String)
				translated = true
			case opt.Emit != nil:
				e.Emit = *opt.Emit
				translated = true
			}
			entries[i] = e
		}
		if translated {
			f.Domain = schema.Map(entries...)
		} else {
			f.Domain = schema.Labels(labels...)
		}
	}

	for _, sw := range fb.Switches {
		switch {
		case sw.Equals != nil && len(sw.Any) > 0:
			return schema.Field{}, fmt.Errorf("switch on %q: equals and any are mutually exclusive", sw.Field)
		case sw.Equals != nil:
			f.Switch = append(f.Switch, schema.All(schema.Is(sw.Field, *sw.Equals)))
		case len(sw.Any) > 0:
			f.Switch = append(f.Switch, schema.All(schema.In(sw.Field, sw.Any...)))
		default:
			f.Switch = append(f.Switch, schema.All(schema.On(sw.Field)))
		}
	}

	return f, nil
}
