package form

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

// Values is a fully-translated answer set: hidden fields read as null and
// display labels are replaced by their emitted values. Accessors are total
// and return zero values for absent or mistyped answers, so consumers can
// read any combination without guarding.
type Values map[string]cty.Value

// Get returns the translated answer for name.
func (v Values) Get(name string) (cty.Value, bool) {
	val, ok := v[name]
	return val, ok
}

// Null reports whether the answer is absent or null.
func (v Values) Null(name string) bool {
	val, ok := v[name]
	return !ok || val.IsNull()
}

// Truthy reports whether the answer is present and truthy.
func (v Values) Truthy(name string) bool {
	val, ok := v[name]
	if !ok {
		return false
	}
	return schema.Truthy(val)
}

// String returns the answer as a string, or "" when absent or not a
// string.
func (v Values) String(name string) string {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.String {
		return ""
	}
	return val.AsString()
}

// Int returns the answer as an integer, or 0 when absent or not a number.
// Fractional answers truncate toward zero.
func (v Values) Int(name string) int64 {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.Number {
		return 0
	}
	n, _ := val.AsBigFloat().Int64()
	return n
}

// Float returns the answer as a float, or 0 when absent or not a number.
func (v Values) Float(name string) float64 {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.Number {
		return 0
	}
	f, _ := val.AsBigFloat().Float64()
	return f
}

// Bool returns the answer as a boolean, or false when absent or not a
// boolean.
func (v Values) Bool(name string) bool {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.Bool {
		return false
	}
	return val.True()
}
