package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Widget hints which control a shell should render for a field. Shells are
// free to substitute; the engine only carries the hint.
type Widget string

const (
	WidgetEntry  Widget = "entry"
	WidgetSelect Widget = "select"
	WidgetSpin   Widget = "spinbox"
	WidgetCheck  Widget = "check"
)

// String returns the widget name.
func (w Widget) String() string { return string(w) }

// IsValid reports whether w is one of the defined widgets.
func (w Widget) IsValid() bool {
	switch w {
	case WidgetEntry, WidgetSelect, WidgetSpin, WidgetCheck:
		return true
	}
	return false
}

// Field describes one question of a form. Only Name is mandatory; New
// infers everything else from the parts that are present.
type Field struct {
	// Name identifies the field everywhere: rules, answers, persistence.
	Name string

	// Text is the widget label. Empty infers a capitalized Name.
	Text string

	// Help is the longer description shown on request.
	Help string

	// Kind is the answer type. Empty infers from Default, then from the
	// domain's first usable entry.
	Kind Kind

	// Domain lists the admissible answers. Nil leaves the field free-form.
	Domain *Domain

	// Default is the initial answer. Unset infers the domain's first
	// non-null entry, then the kind's zero value.
	Default cty.Value

	// Widget hints the control. Empty infers check for booleans, select
	// for domains and entry otherwise.
	Widget Widget

	// Tab and Group are presentation metadata for shells that lay fields
	// out in pages.
	Tab   string
	Group string

	// Switch gates visibility on other fields' answers. Empty keeps the
	// field always visible.
	Switch Rule
}

// Parse coerces a textual answer to the field's kind.
func (f Field) Parse(s string) (cty.Value, error) {
	v, err := f.Kind.Convert(cty.StringVal(s))
	if err != nil {
		return cty.NilVal, fmt.Errorf("field %s: %w", f.Name, err)
	}
	return v, nil
}

// Translate maps a raw answer to the value it contributes to generated
// output. The NoneLabel reads as null on both sides of the translation,
// and answers a translated domain does not contain fall back to the
// default's translation. Translate never fails: an unmappable answer
// degrades to null.
func (f Field) Translate(raw cty.Value) cty.Value {
	if IsNone(raw) {
		raw = cty.NullVal(f.Kind.Type())
	}
	if f.Domain.Translated() {
		out, ok := f.Domain.Emit(raw)
		if !ok {
			out, ok = f.Domain.Emit(f.Default)
		}
		if !ok {
			return cty.NullVal(f.Kind.Type())
		}
		raw = out
	}
	if IsNone(raw) {
		return cty.NullVal(f.Kind.Type())
	}
	return raw
}
