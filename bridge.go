package chansignal

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// intakeBufferSize is large so the runtime never has to discard an
// occurrence while the listener is busy fanning out the previous one.
const intakeBufferSize = 2048

// Bridge turns OS signals into values on channels. Starting a bridge diverts
// every supported signal away from its default action for the rest of the
// process lifetime; there is no way to stop it.
//
// Most programs use the process-wide Default bridge through the package
// level functions. The zero value is a bridge with the default options.
type Bridge struct {
	source   SignalSource
	capacity int
	log      logrus.FieldLogger

	initOnce sync.Once
	registry *registry

	startOnce sync.Once
	startErr  error
	started   atomic.Bool
	diverted  *Set
}

// NewBridge returns a bridge that has not been started yet.
func NewBridge(opts ...Option) *Bridge {
	b := &Bridge{}
	for _, opt := range opts {
		opt(b)
	}
	b.init()
	return b
}

// init fills in defaults for anything the options left unset.
func (b *Bridge) init() {
	b.initOnce.Do(func() {
		if b.source == nil {
			b.source = runtimeSource{}
		}
		if b.capacity <= 0 {
			b.capacity = DefaultCapacity
		}
		if b.log == nil {
			b.log = logrus.StandardLogger()
		}
		b.registry = newRegistry(b.log)
	})
}

// Start diverts the supported signal set and spawns the listener. It runs
// once; later calls return the result of the first one. Calling it first
// thing in main closes the window in which a signal still has its default
// action.
func (b *Bridge) Start() error {
	b.init()
	b.startOnce.Do(func() {
		if !platformSupported {
			b.startErr = fmt.Errorf("start: %w", ErrUnsupportedPlatform)
			b.log.WithError(b.startErr).Error("chansignal: cannot divert signals")
			return
		}

		diverted := Supported()
		osSigs := make([]os.Signal, 0, diverted.Len())
		for _, sig := range diverted.Signals() {
			osSigs = append(osSigs, sig.OS())
		}
		intake := make(chan os.Signal, intakeBufferSize)
		b.source.Notify(intake, osSigs...)

		l := &listener{intake: intake, registry: b.registry, log: b.log}
		go l.run()

		b.diverted = diverted
		b.started.Store(true)
		b.log.WithField("signals", diverted).Debug("chansignal: diverted signals")
	})
	return b.startErr
}

// Signals returns the set diverted by Start, or an empty set before Start
// succeeded.
func (b *Bridge) Signals() *Set {
	if !b.started.Load() {
		return NewSet()
	}
	return NewSet(b.diverted.Signals()...)
}

// Notify subscribes a new channel to sigs and returns its receive side.
// Every occurrence of a requested signal is sent on it with a non-blocking
// send; once its buffer is full further occurrences are dropped for this
// channel only. The channel is never closed.
func (b *Bridge) Notify(sigs ...Signal) (<-chan Signal, error) {
	set, err := b.subscribable(sigs)
	if err != nil {
		return nil, err
	}
	c := make(chan Signal, b.capacity)
	b.registry.register(set, c)
	b.log.WithFields(logrus.Fields{
		"signals":  set,
		"capacity": b.capacity,
	}).Debug("chansignal: subscribed")
	return c, nil
}

// NotifyOn subscribes a caller-owned channel to sigs. Sends are non-blocking,
// so an unbuffered channel only receives while its reader is waiting.
// Subscribing the same channel to a signal twice has no further effect.
func (b *Bridge) NotifyOn(c chan<- Signal, sigs ...Signal) error {
	if c == nil {
		return ErrNilChannel
	}
	set, err := b.subscribable(sigs)
	if err != nil {
		return err
	}
	b.registry.register(set, c)
	b.log.WithFields(logrus.Fields{
		"signals":  set,
		"capacity": cap(c),
	}).Debug("chansignal: subscribed caller channel")
	return nil
}

// MustNotify is like Notify but panics if the subscription fails.
func (b *Bridge) MustNotify(sigs ...Signal) <-chan Signal {
	c, err := b.Notify(sigs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Stats returns the counters of sig. Unsupported signals report zero values.
func (b *Bridge) Stats(sig Signal) Stats {
	if !sig.Supported() {
		return Stats{}
	}
	b.init()
	return b.registry.stats(sig)
}

// subscribable validates sigs and makes sure the bridge is started. Nothing
// is registered when it returns an error.
func (b *Bridge) subscribable(sigs []Signal) (*Set, error) {
	b.init()
	if !platformSupported {
		return nil, b.Start()
	}
	set := NewSet(sigs...)
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	if err := b.Start(); err != nil {
		return nil, err
	}
	return set, nil
}
