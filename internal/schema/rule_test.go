package schema

import (
	"testing"

	"github.com/zclconf/go-cty/cty"
)

func answers(pairs ...any) map[string]cty.Value {
	m := make(map[string]cty.Value, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			m[name] = cty.StringVal(v)
		case bool:
			m[name] = cty.BoolVal(v)
		case int:
			m[name] = cty.NumberIntVal(int64(v))
		case cty.Value:
			m[name] = v
		default:
			panic("unsupported answer type")
		}
	}
	return m
}

func TestRule_EmptyAlwaysVisible(t *testing.T) {
	var r Rule
	if !r.Eval(nil) {
		t.Error("empty rule should evaluate true")
	}
	if !r.Eval(answers("x", "y")) {
		t.Error("empty rule should evaluate true regardless of answers")
	}
}

func TestRule_On(t *testing.T) {
	r := ShowIf(On("flag"))
	if !r.Eval(answers("flag", true)) {
		t.Error("On should hold for true")
	}
	if r.Eval(answers("flag", false)) {
		t.Error("On should not hold for false")
	}
	if r.Eval(answers("flag", cty.NullVal(cty.Bool))) {
		t.Error("On should not hold for null")
	}
}

func TestRule_Off(t *testing.T) {
	r := ShowIf(Off("flag"))
	if !r.Eval(answers("flag", false)) {
		t.Error("Off should hold for false")
	}
	if r.Eval(answers("flag", true)) {
		t.Error("Off should not hold for true")
	}
}

func TestRule_IsAndIsnt(t *testing.T) {
	r := ShowIf(Is("theory", "DFT"))
	if !r.Eval(answers("theory", "DFT")) {
		t.Error("Is should hold on equality")
	}
	if r.Eval(answers("theory", "HF")) {
		t.Error("Is should not hold on other answers")
	}

	r = ShowIf(Isnt("theory", "DFTB"))
	if !r.Eval(answers("theory", "DFT")) {
		t.Error("Isnt should hold on other answers")
	}
	if r.Eval(answers("theory", "DFTB")) {
		t.Error("Isnt should not hold on equality")
	}
}

func TestRule_In(t *testing.T) {
	r := ShowIf(In("theory", "HF", "DFT", "MP2", "CCSD"))
	if !r.Eval(answers("theory", "MP2")) {
		t.Error("In should hold for a listed label")
	}
	if r.Eval(answers("theory", "MM")) {
		t.Error("In should not hold for an unlisted label")
	}
}

func TestRule_Has(t *testing.T) {
	r := ShowIf(Has("task", "Opt"))
	if !r.Eval(answers("task", "Opt Freq")) {
		t.Error("Has should hold on substring match")
	}
	if r.Eval(answers("task", "Energy")) {
		t.Error("Has should not hold without the substring")
	}
	if r.Eval(answers("task", cty.NullVal(cty.String))) {
		t.Error("Has should not hold for null")
	}
	if r.Eval(answers("task", 7)) {
		t.Error("Has should not hold for non-strings")
	}
}

func TestRule_When(t *testing.T) {
	big := func(v cty.Value) bool {
		f, _ := v.AsBigFloat().Float64()
		return f > 10
	}
	r := ShowIf(When("memory", big))
	if !r.Eval(answers("memory", 12000)) {
		t.Error("When should apply the predicate")
	}
	if r.Eval(answers("memory", 4)) {
		t.Error("When predicate should be able to reject")
	}
}

func TestRule_MissingFieldNeverHolds(t *testing.T) {
	r := ShowIf(Isnt("theory", "DFTB"))
	if r.Eval(answers()) {
		t.Error("a condition on an absent field should not hold, even negated")
	}
}

func TestRule_Conjunction(t *testing.T) {
	r := ShowIf(On("solvation"), Isnt("theory", "DFTB"))
	if !r.Eval(answers("solvation", true, "theory", "DFT")) {
		t.Error("both conditions hold, rule should be true")
	}
	if r.Eval(answers("solvation", false, "theory", "DFT")) {
		t.Error("first condition fails, rule should be false")
	}
	if r.Eval(answers("solvation", true, "theory", "DFTB")) {
		t.Error("second condition fails, rule should be false")
	}
}

func TestRule_Disjunction(t *testing.T) {
	r := Any(
		All(In("theory", "MP2", "CCSD")),
		All(Is("theory", "DFT"), Has("dft:family", "Double-Hybrid")),
	)
	if !r.Eval(answers("theory", "CCSD")) {
		t.Error("first scenario should suffice")
	}
	if !r.Eval(answers("theory", "DFT", "dft:family", "RS-Double-Hybrid")) {
		t.Error("second scenario should suffice")
	}
	if r.Eval(answers("theory", "DFT", "dft:family", "GGA")) {
		t.Error("neither scenario holds, rule should be false")
	}
}

func TestRule_EmptyScenarioNeverHolds(t *testing.T) {
	r := Any(All())
	if r.Eval(answers("x", "y")) {
		t.Error("a scenario with no conditions should not make the rule true")
	}
}
