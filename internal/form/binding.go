package form

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
)

// Handle identifies one created widget to its Binding.
type Handle any

// Binding renders fields and reports user edits back to the session. The
// engine drives the binding; implementations live in the shell, and the
// engine never assumes anything about what a handle is.
type Binding interface {
	// Create builds the widget for a field and returns its handle.
	Create(f schema.Field) (Handle, error)

	// Get reads the widget's current answer.
	Get(h Handle) (cty.Value, error)

	// Set writes an answer into the widget without triggering OnChange.
	Set(h Handle, v cty.Value) error

	// Show and Hide toggle the widget's presence in the layout.
	Show(h Handle)
	Hide(h Handle)

	// OnChange registers fn to run when the user edits the widget.
	OnChange(h Handle, fn func(cty.Value))
}

// Attach creates one widget per field, seeds each with the current answer,
// wires edits back into Set and applies the current visibility. Attach is
// called once, after New and any Restore.
func (s *Session) Attach(b Binding) error {
	s.binding = b
	s.handles = make(map[string]Handle, s.schema.Len())
	for _, f := range s.schema.Fields() {
		h, err := b.Create(f)
		if err != nil {
			return fmt.Errorf("create widget %s: %w", f.Name, err)
		}
		s.handles[f.Name] = h
		if err := b.Set(h, s.values[f.Name]); err != nil {
			return fmt.Errorf("seed widget %s: %w", f.Name, err)
		}
		name := f.Name
		b.OnChange(h, func(v cty.Value) { _ = s.Set(name, v) })
		if s.visible[f.Name] {
			b.Show(h)
		} else {
			b.Hide(h)
		}
	}
	return nil
}

// Refresh re-reads every widget into the session in one sweep, then
// re-evaluates visibility once. A widget whose read or coercion fails
// contributes the field default instead, and the sweep keeps going.
func (s *Session) Refresh() {
	if s.binding == nil {
		return
	}
	for _, f := range s.schema.Fields() {
		h, ok := s.handles[f.Name]
		if !ok {
			continue
		}
		raw, err := s.binding.Get(h)
		if err != nil {
			s.values[f.Name] = f.Default
			continue
		}
		v, err := f.Kind.Convert(raw)
		if err != nil {
			s.values[f.Name] = f.Default
			continue
		}
		s.values[f.Name] = v
	}
	s.recompute(true)
}
