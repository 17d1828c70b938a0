package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Kind identifies the primitive type of a field's answers.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindBoolean Kind = "boolean"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindInteger, KindFloat, KindBoolean:
		return true
	}
	return false
}

// Type returns the cty type that carries answers of this kind. Integer and
// float answers share cty.Number; the distinction lives on the kind.
func (k Kind) Type() cty.Type {
	switch k {
	case KindInteger, KindFloat:
		return cty.Number
	case KindBoolean:
		return cty.Bool
	default:
		return cty.String
	}
}

// Zero returns the kind's zero value: "", 0, 0.0 or false.
func (k Kind) Zero() cty.Value {
	switch k {
	case KindInteger:
		return cty.NumberIntVal(0)
	case KindFloat:
		return cty.NumberFloatVal(0)
	case KindBoolean:
		return cty.False
	default:
		return cty.StringVal("")
	}
}

// Convert coerces v to the kind using the standard cty conversions:
// numeric strings parse, numbers and booleans stringify. Null converts to
// the kind's null. Integer kinds reject fractional values.
func (k Kind) Convert(v cty.Value) (cty.Value, error) {
	if v == cty.NilVal || v.IsNull() {
		return cty.NullVal(k.Type()), nil
	}
	out, err := convert.Convert(v, k.Type())
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %s to %s", v.Type().FriendlyName(), k)
	}
	if k == KindInteger && !out.AsBigFloat().IsInt() {
		return cty.NilVal, fmt.Errorf("must be an integer")
	}
	return out, nil
}

// kindOf infers a kind from a value's type. cty numbers do not remember
// whether they were written as integers, so whole numbers infer integer;
// float fields with whole defaults need an explicit kind.
func kindOf(v cty.Value) (Kind, bool) {
	if v == cty.NilVal || v.IsNull() {
		return "", false
	}
	switch v.Type() {
	case cty.String:
		return KindString, true
	case cty.Bool:
		return KindBoolean, true
	case cty.Number:
		if v.AsBigFloat().IsInt() {
			return KindInteger, true
		}
		return KindFloat, true
	}
	return "", false
}
