package chansignal

import (
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// Stats describes the subscribers of one signal and what happened to its
// occurrences so far.
type Stats struct {
	Subscribers int
	// Delivered and Dropped count per-subscriber sends, so one occurrence
	// fanned out to three channels adds three.
	Delivered uint64
	Dropped   uint64
}

// registry maps every supported signal to the channels subscribed to it.
// Registrations are never removed.
type registry struct {
	mu        sync.Mutex
	subs      [numSignals][]chan<- Signal
	delivered [numSignals]uint64
	dropped   [numSignals]uint64

	log logrus.FieldLogger
}

func newRegistry(log logrus.FieldLogger) *registry {
	return &registry{log: log}
}

// register subscribes c to every member of set. A channel already subscribed
// to a signal is not added twice, so it sees one value per occurrence.
func (r *registry) register(set *Set, c chan<- Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sig := range set.Signals() {
		if slices.Contains(r.subs[sig], c) {
			continue
		}
		r.subs[sig] = append(r.subs[sig], c)
	}
}

// deliver sends sig to every channel subscribed to it without blocking. A
// subscriber whose buffer is full loses this occurrence. The drop is logged
// after the lock is released so a slow log sink cannot stall subscribers.
func (r *registry) deliver(sig Signal) (delivered, dropped int) {
	r.mu.Lock()
	subscribers := len(r.subs[sig])
	for _, c := range r.subs[sig] {
		select {
		case c <- sig:
			delivered++
		default:
			dropped++
		}
	}
	r.delivered[sig] += uint64(delivered)
	r.dropped[sig] += uint64(dropped)
	r.mu.Unlock()

	if dropped > 0 {
		r.log.WithFields(logrus.Fields{
			"signal":      sig,
			"subscribers": subscribers,
			"dropped":     dropped,
		}).Debug("chansignal: subscriber channel full, occurrence dropped")
	}
	return delivered, dropped
}

func (r *registry) stats(sig Signal) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		Subscribers: len(r.subs[sig]),
		Delivered:   r.delivered[sig],
		Dropped:     r.dropped[sig],
	}
}
