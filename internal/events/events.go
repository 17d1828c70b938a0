// Package events defines the notifications a form session emits while it
// runs. Delivery is synchronous on the caller's goroutine; publishers that
// need a queue put one behind the interface.
package events

// Event topic constants
const (
	TopicValueChanged      = "form.value.changed"
	TopicVisibilityChanged = "form.visibility.changed"
	TopicAnswersRestored   = "form.answers.restored"
	TopicAnswersReset      = "form.answers.reset"
)

// Event types

// ValueChanged is published after a raw answer is stored.
type ValueChanged struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// VisibilityChanged is published for each field a recompute shows or hides.
type VisibilityChanged struct {
	Field   string `json:"field"`
	Visible bool   `json:"visible"`
}

// AnswersRestored is published after a bulk restore from persisted state.
type AnswersRestored struct {
	Count int `json:"count"`
}

// AnswersReset is published after every answer returns to its default.
type AnswersReset struct{}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(topic string, event any) error
	Close() error
}
