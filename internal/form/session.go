// Package form runs a questionnaire session over a schema: it owns the raw
// answers, re-evaluates visibility after every change and exposes the
// translated answer set consumers generate output from. Widgets attach
// through the Binding interface; the engine itself never renders anything.
package form

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/events"
	"github.com/groblegark/orcinus/internal/schema"
)

// Snapshot is a copy of the raw answers keyed by field name, the unit of
// persistence. Raw means display-domain: labels before translation, hidden
// fields included.
type Snapshot map[string]cty.Value

// Option configures a Session.
type Option func(*Session)

// WithPublisher routes change notifications to p. The default publisher
// discards them.
func WithPublisher(p events.Publisher) Option {
	return func(s *Session) { s.pub = p }
}

// Session owns the raw answers and visibility flags for one schema. It is
// not safe for concurrent use; callers serialize access the same way a
// single event loop would.
type Session struct {
	schema  *schema.Schema
	values  map[string]cty.Value
	visible map[string]bool
	pub     events.Publisher
	binding Binding
	handles map[string]Handle
}

// New builds a session with every field at its schema default and
// visibility already evaluated. The initial evaluation publishes nothing;
// notifications start with the first change.
func New(sc *schema.Schema, opts ...Option) *Session {
	s := &Session{
		schema:  sc,
		values:  make(map[string]cty.Value, sc.Len()),
		visible: make(map[string]bool, sc.Len()),
		pub:     &events.NoopPublisher{},
	}
	for _, f := range sc.Fields() {
		s.values[f.Name] = f.Default
		s.visible[f.Name] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute(false)
	return s
}

// Schema returns the schema the session runs.
func (s *Session) Schema() *schema.Schema { return s.schema }

// Set stores a raw answer after coercing it to the field's kind, then
// synchronously re-evaluates every visibility rule. Hidden fields accept
// answers like any other; hiding only affects the translated view.
func (s *Session) Set(name string, value cty.Value) error {
	f, ok := s.schema.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	v, err := f.Kind.Convert(value)
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	s.values[name] = v
	_ = s.pub.Publish(events.TopicValueChanged, events.ValueChanged{
		Field: name,
		Value: schema.Format(v),
	})
	s.recompute(true)
	return nil
}

// Raw returns the stored display-domain answer for name.
func (s *Session) Raw(name string) (cty.Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Visible reports whether the named field is currently shown. Unknown
// names read as hidden.
func (s *Session) Visible(name string) bool {
	return s.visible[name]
}

// Snapshot copies all raw answers for persistence, hidden fields included,
// so answers survive being hidden and reappear intact.
func (s *Session) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.values))
	for name, v := range s.values {
		snap[name] = v
	}
	return snap
}

// Restore overwrites raw answers from a persisted snapshot. Names the
// schema does not declare and answers that will not coerce are skipped;
// those fields keep their current answer, which after New is the default.
func (s *Session) Restore(snap Snapshot) {
	restored := 0
	for name, raw := range snap {
		f, ok := s.schema.Lookup(name)
		if !ok {
			continue
		}
		v, err := f.Kind.Convert(raw)
		if err != nil {
			continue
		}
		s.values[name] = v
		s.pushWidget(name, v)
		restored++
	}
	_ = s.pub.Publish(events.TopicAnswersRestored, events.AnswersRestored{Count: restored})
	s.recompute(true)
}

// Reset returns every field to its schema default.
func (s *Session) Reset() {
	for _, f := range s.schema.Fields() {
		s.values[f.Name] = f.Default
		s.pushWidget(f.Name, f.Default)
	}
	_ = s.pub.Publish(events.TopicAnswersReset, events.AnswersReset{})
	s.recompute(true)
}

// Values returns the translated answer set: hidden fields are null, labels
// are replaced by their emitted values and the NoneLabel reads as null.
func (s *Session) Values() Values {
	out := make(Values, len(s.values))
	for _, f := range s.schema.Fields() {
		if !s.visible[f.Name] {
			out[f.Name] = cty.NullVal(f.Kind.Type())
			continue
		}
		out[f.Name] = f.Translate(s.values[f.Name])
	}
	return out
}

// recompute evaluates every rule against one snapshot of the raw answers
// and applies the deltas: flags flip, attached widgets show or hide, and
// subscribers hear about each change when notify is set.
func (s *Session) recompute(notify bool) {
	for _, f := range s.schema.Fields() {
		now := f.Switch.Eval(s.values)
		if now == s.visible[f.Name] {
			continue
		}
		s.visible[f.Name] = now
		if h, ok := s.handles[f.Name]; ok {
			if now {
				s.binding.Show(h)
			} else {
				s.binding.Hide(h)
			}
		}
		if notify {
			_ = s.pub.Publish(events.TopicVisibilityChanged, events.VisibilityChanged{
				Field:   f.Name,
				Visible: now,
			})
		}
	}
}

func (s *Session) pushWidget(name string, v cty.Value) {
	if s.binding == nil {
		return
	}
	if h, ok := s.handles[name]; ok {
		_ = s.binding.Set(h, v)
	}
}
