package schema

import (
	"math"

	"github.com/zclconf/go-cty/cty"
)

// Entry is one admissible answer: the value shown to the user and the value
// emitted in its place during translation. Untranslated domains keep the
// two identical.
type Entry struct {
	Value cty.Value
	Emit  cty.Value
}

// To builds a translated entry mapping a display label to an emitted
// string.
func To(label, emit string) Entry {
	return Entry{Value: cty.StringVal(label), Emit: cty.StringVal(emit)}
}

// ToNull builds a translated entry whose label emits nothing.
func ToNull(label string) Entry {
	return Entry{Value: cty.StringVal(label), Emit: cty.NullVal(cty.String)}
}

// ToInt builds a translated entry mapping a display label to a number.
func ToInt(label string, emit int64) Entry {
	return Entry{Value: cty.StringVal(label), Emit: cty.NumberIntVal(emit)}
}

// ToBool builds a translated entry keyed by a boolean answer.
func ToBool(value bool, emit cty.Value) Entry {
	return Entry{Value: cty.BoolVal(value), Emit: emit}
}

// Domain is the ordered set of answers a field offers. A translated domain
// additionally rewrites each answer on the way out; looking up an answer it
// does not contain falls back to the field default's rewrite.
type Domain struct {
	entries    []Entry
	translated bool
}

// Labels builds an untranslated domain of string answers.
func Labels(labels ...string) *Domain {
	d := &Domain{entries: make([]Entry, len(labels))}
	for i, l := range labels {
		v := cty.StringVal(l)
		d.entries[i] = Entry{Value: v, Emit: v}
	}
	return d
}

// Ints builds an untranslated domain of integer answers.
func Ints(values ...int64) *Domain {
	d := &Domain{entries: make([]Entry, len(values))}
	for i, n := range values {
		v := cty.NumberIntVal(n)
		d.entries[i] = Entry{Value: v, Emit: v}
	}
	return d
}

// IntRange builds an untranslated domain of integers from lo to hi
// inclusive, stepping by step.
func IntRange(lo, hi, step int64) *Domain {
	var d Domain
	for n := lo; n <= hi; n += step {
		v := cty.NumberIntVal(n)
		d.entries = append(d.entries, Entry{Value: v, Emit: v})
	}
	return &d
}

// FloatRange builds an untranslated domain of floats from lo to hi
// inclusive, stepping by step. Values are rounded to two decimals so that
// accumulated step error does not leak into answers.
func FloatRange(lo, hi, step float64) *Domain {
	var d Domain
	for i := 0; ; i++ {
		f := math.Round((lo+float64(i)*step)*100) / 100
		if f > hi {
			break
		}
		v := cty.NumberFloatVal(f)
		d.entries = append(d.entries, Entry{Value: v, Emit: v})
	}
	return &d
}

// Map builds a translated domain from explicit entries.
func Map(entries ...Entry) *Domain {
	return &Domain{entries: entries, translated: true}
}

// Entries returns the domain's entries in declaration order. A nil domain
// has none.
func (d *Domain) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Len returns the number of entries.
func (d *Domain) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Translated reports whether answers are rewritten on the way out.
func (d *Domain) Translated() bool {
	return d != nil && d.translated
}

// Emit looks up the entry for the given answer and returns its emitted
// value. Untranslated domains pass every answer through unchanged.
func (d *Domain) Emit(answer cty.Value) (cty.Value, bool) {
	if !d.Translated() {
		return answer, true
	}
	for _, e := range d.entries {
		if e.Value.RawEquals(answer) {
			return e.Emit, true
		}
	}
	return cty.NilVal, false
}

// firstNonNull returns the first entry whose answer is neither null nor the
// NoneLabel. Default inference starts here.
func (d *Domain) firstNonNull() (Entry, bool) {
	for _, e := range d.Entries() {
		if IsNone(e.Value) {
			continue
		}
		return e, true
	}
	return Entry{}, false
}
