package events

// NoopPublisher is a Publisher that does nothing (used when no consumer is
// wired up).
type NoopPublisher struct{}

func (n *NoopPublisher) Publish(topic string, event any) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}

// PublisherFunc adapts a plain function to the Publisher interface.
type PublisherFunc func(topic string, event any) error

func (f PublisherFunc) Publish(topic string, event any) error {
	return f(topic, event)
}

func (f PublisherFunc) Close() error {
	return nil
}

var (
	_ Publisher = (*NoopPublisher)(nil)
	_ Publisher = (PublisherFunc)(nil)
)
