package schema

import (
	"strconv"

	"github.com/zclconf/go-cty/cty"
)

// NoneLabel is the display string that reads as "no answer". Fields whose
// domain offers an explicit opt-out carry it as a selectable label; it
// translates to null.
const NoneLabel = "None"

// IsNone reports whether v is null or the NoneLabel string.
func IsNone(v cty.Value) bool {
	if v == cty.NilVal || v.IsNull() {
		return true
	}
	return v.Type() == cty.String && v.AsString() == NoneLabel
}

// Truthy reports whether v counts as "on" for visibility purposes: null and
// NoneLabel are off, booleans are themselves, numbers are truthy when
// nonzero and strings when nonempty.
func Truthy(v cty.Value) bool {
	if IsNone(v) {
		return false
	}
	switch v.Type() {
	case cty.Bool:
		return v.True()
	case cty.Number:
		return v.AsBigFloat().Sign() != 0
	case cty.String:
		return v.AsString() != ""
	}
	return false
}

// Format renders v as the token it contributes to generated output. Whole
// numbers print without a fractional part; null prints as the empty string.
func Format(v cty.Value) string {
	if v == cty.NilVal || v.IsNull() {
		return ""
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		return strconv.FormatBool(v.True())
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			n, _ := bf.Int64()
			return strconv.FormatInt(n, 10)
		}
		f, _ := bf.Float64()
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}
