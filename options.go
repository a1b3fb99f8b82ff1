package chansignal

import "github.com/sirupsen/logrus"

// DefaultCapacity is the buffer size of channels created by Notify. It lets a
// burst of repeated signals queue up before a slow reader starts losing them.
const DefaultCapacity = 100

type Option func(*Bridge)

func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// WithSource replaces the runtime signal source, mainly for tests.
func WithSource(src SignalSource) Option {
	return func(b *Bridge) {
		if src != nil {
			b.source = src
		}
	}
}

// WithCapacity sets the buffer size of channels created by Notify. Values
// below 1 keep DefaultCapacity.
func WithCapacity(n int) Option {
	return func(b *Bridge) {
		if n > 0 {
			b.capacity = n
		}
	}
}
