//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package chansignal

import (
	"os"
	"slices"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

// FuzzParse checks that Parse never panics and that every accepted name
// round-trips through String.
func FuzzParse(f *testing.F) {
	for _, seed := range []string{"INT", "sigterm", "2", "KILL", "", "SIG", "sigsigint", "\x00"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, name string) {
		sig, err := Parse(name)
		if err != nil {
			return
		}
		if !sig.Supported() {
			t.Fatalf("Parse(%q) returned unsupported %v", name, sig)
		}
		again, err := Parse(sig.String())
		if err != nil || again != sig {
			t.Fatalf("round trip of %v failed: %v, %v", sig, again, err)
		}
	})
}

// FuzzSet feeds arbitrary bytes as signal values and compares the set
// against a map.
func FuzzSet(f *testing.F) {
	f.Add([]byte{1, 2, 2, 10})
	f.Add([]byte{0, 255, 26, 25})

	f.Fuzz(func(t *testing.T, data []byte) {
		s := NewSet()
		want := make(map[Signal]bool)
		for _, d := range data {
			s.Add(Signal(d))
			want[Signal(d)] = true
		}
		if s.Len() != len(want) {
			t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
		}
		got := s.Signals()
		if !slices.IsSorted(got) {
			t.Fatalf("Signals() not sorted: %v", got)
		}
		for _, sig := range got {
			if !want[sig] {
				t.Fatalf("unexpected member %v", sig)
			}
		}
	})
}

// FuzzRegistrations drives a bridge with arbitrary subscribe and deliver
// sequences. Every subscriber must only ever see signals it asked for.
func FuzzRegistrations(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	f.Add([]byte{0, 0, 0, 200, 11, 11, 11})

	f.Fuzz(func(t *testing.T, data []byte) {
		src := &mockSignalSource{SignalChan: make(chan os.Signal, 256)}
		t.Cleanup(src.close)
		logger, _ := test.NewNullLogger()
		b := NewBridge(WithSource(src), WithLogger(logger), WithCapacity(4))

		type sub struct {
			c   <-chan Signal
			set *Set
		}
		var subs []sub
		const maxOps = 128
		for i := 0; i < len(data) && i < maxOps; i++ {
			sig := Signal(data[i] % uint8(numSignals+1))
			if data[i]&1 == 0 {
				c, err := b.Notify(sig)
				if err != nil {
					if sig.Supported() {
						t.Fatalf("Notify(%v) failed: %v", sig, err)
					}
					continue
				}
				subs = append(subs, sub{c: c, set: NewSet(sig)})
			} else if sig.Supported() && b.Signals().Len() > 0 {
				src.SignalChan <- sig.OS()
			}
		}
		for _, s := range subs {
			for {
				select {
				case got := <-s.c:
					if !s.set.Has(got) {
						t.Fatalf("subscriber of %v received %v", s.set, got)
					}
					continue
				default:
				}
				break
			}
		}
	})
}
