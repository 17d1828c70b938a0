package schema

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Cond is a condition on one other field's raw answer.
type Cond struct {
	Field string
	check func(cty.Value) bool
}

// On is satisfied when the named field's answer is truthy.
func On(field string) Cond {
	return Cond{Field: field, check: Truthy}
}

// Off is satisfied when the named field's answer is not truthy.
func Off(field string) Cond {
	return Cond{Field: field, check: func(v cty.Value) bool { return !Truthy(v) }}
}

// Is is satisfied when the answer equals the given label.
func Is(field, label string) Cond {
	want := cty.StringVal(label)
	return Cond{Field: field, check: want.RawEquals}
}

// Isnt is satisfied when the answer differs from the given label.
func Isnt(field, label string) Cond {
	want := cty.StringVal(label)
	return Cond{Field: field, check: func(v cty.Value) bool { return !want.RawEquals(v) }}
}

// In is satisfied when the answer equals any of the given labels.
func In(field string, labels ...string) Cond {
	want := make([]cty.Value, len(labels))
	for i, l := range labels {
		want[i] = cty.StringVal(l)
	}
	return Cond{Field: field, check: func(v cty.Value) bool {
		for _, w := range want {
			if w.RawEquals(v) {
				return true
			}
		}
		return false
	}}
}

// Has is satisfied when the answer is a string containing substr.
func Has(field, substr string) Cond {
	return Cond{Field: field, check: func(v cty.Value) bool {
		return !IsNone(v) && v.Type() == cty.String && strings.Contains(v.AsString(), substr)
	}}
}

// When is satisfied when the predicate holds for the answer.
func When(field string, pred func(cty.Value) bool) Cond {
	return Cond{Field: field, check: pred}
}

// holds evaluates the condition against a raw answer set. A field with no
// stored answer never satisfies a condition.
func (c Cond) holds(values map[string]cty.Value) bool {
	v, ok := values[c.Field]
	if !ok {
		return false
	}
	return c.check(v)
}

// Scenario is a conjunction of conditions: it holds when every condition
// does.
type Scenario []Cond

// All builds a scenario from conditions.
func All(conds ...Cond) Scenario { return Scenario(conds) }

// Rule decides a field's visibility as a disjunction of scenarios. The
// empty rule keeps the field always visible.
type Rule []Scenario

// Any builds a rule from alternative scenarios.
func Any(scenarios ...Scenario) Rule { return Rule(scenarios) }

// ShowIf builds a single-scenario rule: all the given conditions must hold.
func ShowIf(conds ...Cond) Rule { return Rule{Scenario(conds)} }

// Eval decides visibility against one snapshot of raw answers. Evaluation
// reads only the snapshot, so re-evaluating against the same answers always
// agrees with itself.
func (r Rule) Eval(values map[string]cty.Value) bool {
	if len(r) == 0 {
		return true
	}
	for _, scenario := range r {
		if scenario.holds(values) {
			return true
		}
	}
	return false
}

func (s Scenario) holds(values map[string]cty.Value) bool {
	for _, c := range s {
		if !c.holds(values) {
			return false
		}
	}
	return len(s) > 0
}

// refs returns every field name the rule reads.
func (r Rule) refs() []string {
	var names []string
	for _, scenario := range r {
		for _, c := range scenario {
			names = append(names, c.Field)
		}
	}
	return names
}
