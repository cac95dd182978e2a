package port

import "context"

// Notifier broadcasts "something changed" signals on named topics. Signals
// carry no payload; subscribers reload whatever state the topic names.
// Delivery is at-most-once and may be coalesced by adapters.
type Notifier interface {
	// Publish signals every current subscriber of topic.
	Publish(ctx context.Context, topic string) error

	// Subscribe registers fn for topic and returns a function that removes
	// it. fn runs on an adapter goroutine and must not block for long.
	Subscribe(topic string, fn func()) (cancel func(), err error)

	// Close stops delivering signals and releases adapter resources.
	Close() error
}
