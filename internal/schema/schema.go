// Package schema describes questionnaire forms: typed fields, their
// admissible answers, translation to emitted values and the rules that gate
// field visibility. A Schema is immutable once built; sessions interpret
// it, they never change it.
package schema

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// FieldError is a single failure on a named field.
type FieldError struct {
	Field   string
	Message string
}

// SchemaError collects every field-level failure found while building a
// schema, so a bad catalog reports all its problems at once.
type SchemaError struct {
	Errors []FieldError
}

// Error returns all failures joined into one message.
func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "invalid schema: " + strings.Join(parts, "; ")
}

// HasErrors reports whether any failure was recorded.
func (e *SchemaError) HasErrors() bool { return len(e.Errors) > 0 }

func (e *SchemaError) add(field, format string, args ...any) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Schema is a normalized, ordered set of field descriptors.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New normalizes the given descriptors into a schema: kinds, defaults and
// widgets are inferred where absent, defaults are coerced to their kind,
// and every switch reference is checked against the declared names. It
// returns a *SchemaError listing every field that cannot be resolved.
func New(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	var se SchemaError
	for _, f := range fields {
		f, errs := normalize(f)
		se.Errors = append(se.Errors, errs...)
		if _, dup := s.index[f.Name]; dup {
			se.add(f.Name, "duplicate field name")
			continue
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	for _, f := range s.fields {
		for _, ref := range f.Switch.refs() {
			if _, ok := s.index[ref]; !ok {
				se.add(f.Name, "switch references unknown field %q", ref)
			}
		}
	}
	if se.HasErrors() {
		return nil, &se
	}
	return s, nil
}

// normalize resolves one descriptor's inferred parts. Returned errors keep
// the field's name so SchemaError can report it.
func normalize(f Field) (Field, []FieldError) {
	var errs []FieldError
	fail := func(format string, args ...any) {
		errs = append(errs, FieldError{Field: f.Name, Message: fmt.Sprintf(format, args...)})
	}

	if f.Name == "" {
		fail("field name is required")
		return f, errs
	}
	if f.Text == "" {
		f.Text = capitalize(f.Name)
	}

	switch {
	case f.Kind != "":
		if !f.Kind.IsValid() {
			fail("unknown kind %q", f.Kind)
			return f, errs
		}
	case f.Default != cty.NilVal && !f.Default.IsNull():
		k, ok := kindOf(f.Default)
		if !ok {
			fail("cannot infer kind from default %s", f.Default.Type().FriendlyName())
			return f, errs
		}
		f.Kind = k
	default:
		e, ok := f.Domain.firstNonNull()
		if !ok {
			fail("cannot infer kind: no default and no usable domain entry")
			return f, errs
		}
		k, ok := kindOf(e.Value)
		if !ok {
			fail("cannot infer kind from domain entry %s", e.Value.Type().FriendlyName())
			return f, errs
		}
		f.Kind = k
	}

	if f.Default == cty.NilVal || f.Default.IsNull() {
		if e, ok := f.Domain.firstNonNull(); ok {
			f.Default = e.Value
		} else {
			f.Default = f.Kind.Zero()
		}
	}
	def, err := f.Kind.Convert(f.Default)
	if err != nil {
		fail("default: %v", err)
		return f, errs
	}
	f.Default = def

	if f.Domain.Translated() {
		if _, ok := f.Domain.Emit(f.Default); !ok {
			fail("default %s is not in the translated domain", Format(f.Default))
		}
	}

	switch {
	case f.Widget != "":
		if !f.Widget.IsValid() {
			fail("unknown widget %q", f.Widget)
		}
	case f.Kind == KindBoolean:
		f.Widget = WidgetCheck
	case f.Domain.Len() > 0:
		f.Widget = WidgetSelect
	default:
		f.Widget = WidgetEntry
	}

	return f, errs
}

// Fields returns the descriptors in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the descriptor with the given name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Merge applies overlay descriptors to base by name. A matching name is
// patched part-by-part, with set overlay parts winning; an unknown name
// appends a new descriptor. The result still goes through New, so partial
// overlay fields are completed by the usual inference.
func Merge(base, overlay []Field) []Field {
	out := make([]Field, len(base))
	copy(out, base)
	index := make(map[string]int, len(out))
	for i, f := range out {
		index[f.Name] = i
	}
	for _, o := range overlay {
		i, ok := index[o.Name]
		if !ok {
			index[o.Name] = len(out)
			out = append(out, o)
			continue
		}
		out[i] = patch(out[i], o)
	}
	return out
}

func patch(f, o Field) Field {
	if o.Text != "" {
		f.Text = o.Text
	}
	if o.Help != "" {
		f.Help = o.Help
	}
	if o.Kind != "" {
		f.Kind = o.Kind
	}
	if o.Domain.Len() > 0 {
		f.Domain = o.Domain
	}
	if o.Default != cty.NilVal {
		f.Default = o.Default
	}
	if o.Widget != "" {
		f.Widget = o.Widget
	}
	if o.Tab != "" {
		f.Tab = o.Tab
	}
	if o.Group != "" {
		f.Group = o.Group
	}
	if len(o.Switch) > 0 {
		f.Switch = o.Switch
	}
	return f
}

// capitalize uppercases the first byte and lowercases the rest, matching
// how field names become widget labels.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
