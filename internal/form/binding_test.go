package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

type fakeWidget struct {
	field    schema.Field
	value    cty.Value
	shown    bool
	onChange func(cty.Value)
	getErr   error
}

type fakeBinding struct {
	widgets  map[string]*fakeWidget
	failName string
}

func newFakeBinding() *fakeBinding {
	return &fakeBinding{widgets: make(map[string]*fakeWidget)}
}

func (b *fakeBinding) Create(f schema.Field) (Handle, error) {
	if f.Name == b.failName {
		return nil, errors.New("widget toolkit exploded")
	}
	w := &fakeWidget{field: f}
	b.widgets[f.Name] = w
	return w, nil
}

func (b *fakeBinding) Get(h Handle) (cty.Value, error) {
	w := h.(*fakeWidget)
	if w.getErr != nil {
		return cty.NilVal, w.getErr
	}
	return w.value, nil
}

func (b *fakeBinding) Set(h Handle, v cty.Value) error {
	h.(*fakeWidget).value = v
	return nil
}

func (b *fakeBinding) Show(h Handle) { h.(*fakeWidget).shown = true }
func (b *fakeBinding) Hide(h Handle) { h.(*fakeWidget).shown = false }

func (b *fakeBinding) OnChange(h Handle, fn func(cty.Value)) {
	h.(*fakeWidget).onChange = fn
}

func TestAttach_CreatesSeedsAndAppliesVisibility(t *testing.T) {
	sc := testSchema(t)
	s := New(sc)
	b := newFakeBinding()
	if err := s.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if len(b.widgets) != sc.Len() {
		t.Fatalf("created %d widgets, want %d", len(b.widgets), sc.Len())
	}
	if !b.widgets["level"].value.RawEquals(cty.NumberIntVal(3)) {
		t.Errorf("level widget seeded with %v, want 3", b.widgets["level"].value)
	}
	if !b.widgets["power"].shown {
		t.Error("power widget should be shown")
	}
	if b.widgets["mode"].shown {
		t.Error("mode widget should start hidden")
	}
}

func TestAttach_CreateFailure(t *testing.T) {
	s := New(testSchema(t))
	b := newFakeBinding()
	b.failName = "mode"
	err := s.Attach(b)
	if err == nil {
		t.Fatal("expected error when a widget cannot be created")
	}
	if !strings.Contains(err.Error(), "mode") {
		t.Errorf("error = %v, want mention of the field", err)
	}
}

func TestAttach_EditsFlowBackIntoSession(t *testing.T) {
	s := New(testSchema(t))
	b := newFakeBinding()
	if err := s.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	// The user flips the power switch.
	b.widgets["power"].onChange(cty.True)

	if v, _ := s.Raw("power"); !v.RawEquals(cty.True) {
		t.Errorf("power = %v, want true", v)
	}
	if !s.Visible("mode") {
		t.Error("mode should become visible")
	}
	if !b.widgets["mode"].shown {
		t.Error("the recompute should have shown the mode widget")
	}
}

func TestSession_PushesAnswersIntoWidgetsOnReset(t *testing.T) {
	s := New(testSchema(t))
	b := newFakeBinding()
	if err := s.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	mustSet(t, s, "level", cty.NumberIntVal(9))

	s.Reset()

	if !b.widgets["level"].value.RawEquals(cty.NumberIntVal(3)) {
		t.Errorf("level widget = %v, want the default pushed back", b.widgets["level"].value)
	}
}

func TestRefresh_ReadsEveryWidget(t *testing.T) {
	s := New(testSchema(t))
	b := newFakeBinding()
	if err := s.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	b.widgets["power"].value = cty.True
	b.widgets["mode"].value = cty.StringVal("turbo")
	b.widgets["level"].value = cty.NumberIntVal(8)
	s.Refresh()

	if v, _ := s.Raw("level"); !v.RawEquals(cty.NumberIntVal(8)) {
		t.Errorf("level = %v, want 8", v)
	}
	if !s.Visible("level") {
		t.Error("one sweep should re-evaluate visibility with the new answers")
	}
}

func TestRefresh_FallsBackToDefaults(t *testing.T) {
	s := New(testSchema(t))
	b := newFakeBinding()
	if err := s.Attach(b); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	mustSet(t, s, "level", cty.NumberIntVal(9))
	mustSet(t, s, "power", cty.True)

	b.widgets["level"].getErr = errors.New("widget gone")
	b.widgets["power"].value = cty.StringVal("maybe")
	b.widgets["mode"].value = cty.StringVal("turbo")
	s.Refresh()

	if v, _ := s.Raw("level"); !v.RawEquals(cty.NumberIntVal(3)) {
		t.Errorf("level = %v, want default after a read failure", v)
	}
	if v, _ := s.Raw("power"); !v.RawEquals(cty.False) {
		t.Errorf("power = %v, want default after a coercion failure", v)
	}
	if v, _ := s.Raw("mode"); !v.RawEquals(cty.StringVal("turbo")) {
		t.Errorf("mode = %v, the sweep must keep going past failures", v)
	}
}
