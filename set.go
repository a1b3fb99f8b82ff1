package chansignal

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is a collection of signals. Adding a signal twice has no effect.
// The zero value is an empty set ready to use.
type Set struct {
	bits bitset.BitSet
}

// NewSet returns a set holding sigs.
func NewSet(sigs ...Signal) *Set {
	s := &Set{}
	for _, sig := range sigs {
		s.Add(sig)
	}
	return s
}

// Supported returns the set of every signal the bridge diverts on this
// platform.
func Supported() *Set {
	return NewSet(all...)
}

func (s *Set) Add(sig Signal) {
	s.bits.Set(uint(sig))
}

func (s *Set) Has(sig Signal) bool {
	return s.bits.Test(uint(sig))
}

func (s *Set) Len() int {
	return int(s.bits.Count())
}

// Union returns a new set holding the members of s and o.
func (s *Set) Union(o *Set) *Set {
	return &Set{bits: *s.bits.Union(&o.bits)}
}

// Signals lists the members of s in ascending Signal order.
func (s *Set) Signals() []Signal {
	out := make([]Signal, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, Signal(i))
	}
	return out
}

// Validate reports ErrNoSignals for an empty set and ErrUnsupportedSignal
// for the first member that is not in the enumeration.
func (s *Set) Validate() error {
	if s.Len() == 0 {
		return ErrNoSignals
	}
	for _, sig := range s.Signals() {
		if !sig.Supported() {
			return fmt.Errorf("%v: %w", sig, ErrUnsupportedSignal)
		}
	}
	return nil
}

func (s *Set) String() string {
	sigs := s.Signals()
	names := make([]string, len(sigs))
	for i, sig := range sigs {
		names[i] = sig.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
