package chansignal

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Signal is one OS signal the bridge can deliver. The zero value is not a
// valid signal.
//
// The set is closed: SIGKILL and SIGSTOP cannot be caught by any process, and
// SIGPROF and SIGURG are reserved by the Go runtime for profiling and
// goroutine preemption, so none of them appear here.
type Signal uint8

const (
	HUP Signal = iota + 1
	INT
	QUIT
	ILL
	ABRT
	FPE
	SEGV
	PIPE
	ALRM
	TERM
	USR1
	USR2
	CHLD
	CONT
	TSTP
	TTIN
	TTOU
	BUS
	SYS
	TRAP
	VTALRM
	XCPU
	XFSZ
	IO
	WINCH

	endSignal // one past the last valid Signal
)

const numSignals = int(endSignal)

// all holds every supported Signal ordered by platform number.
var all = sortedSignals()

func sortedSignals() []Signal {
	if !platformSupported {
		return nil
	}
	out := make([]Signal, 0, numSignals-1)
	for s := HUP; s < endSignal; s++ {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b Signal) int { return a.Num() - b.Num() })
	return out
}

// All returns every supported signal in ascending order of platform number.
// It returns nil on platforms without POSIX signals.
func All() []Signal {
	return slices.Clone(all)
}

// Supported reports whether s is a member of the enumeration on this platform.
func (s Signal) Supported() bool {
	return platformSupported && s >= HUP && s < endSignal
}

// Num returns the platform signal number, or -1 if s is not supported.
func (s Signal) Num() int {
	if !s.Supported() {
		return -1
	}
	return platformNum(s)
}

// OS converts s to a value usable with os.Process.Signal and os/signal.
// It returns nil if s is not supported.
func (s Signal) OS() os.Signal {
	if !s.Supported() {
		return nil
	}
	return platformOS(s)
}

func (s Signal) String() string {
	if s.Supported() {
		if name := platformName(s); name != "" {
			return name
		}
	}
	return "Signal(" + strconv.Itoa(int(s)) + ")"
}

// FromOS resolves an os.Signal reported by the runtime back to a Signal.
func FromOS(sig os.Signal) (Signal, bool) {
	if sig == nil || !platformSupported {
		return 0, false
	}
	return platformFromOS(sig)
}

// Parse resolves a signal name or number. Names are case-insensitive and the
// "SIG" prefix is optional, so "SIGINT", "INT" and "int" are equivalent.
func Parse(name string) (Signal, error) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		for _, s := range all {
			if s.Num() == n {
				return s, nil
			}
		}
		return 0, fmt.Errorf("parse %q: %w", name, ErrUnsupportedSignal)
	}
	upper := strings.ToUpper(name)
	if !strings.HasPrefix(upper, "SIG") {
		upper = "SIG" + upper
	}
	if s, ok := platformLookup(upper); ok {
		return s, nil
	}
	return 0, fmt.Errorf("parse %q: %w", name, ErrUnsupportedSignal)
}
