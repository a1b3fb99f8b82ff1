// Package chansignal delivers OS signals as values on channels, so a program
// waits for SIGINT the same way it waits for anything else:
//
//	c := chansignal.MustNotify(chansignal.INT, chansignal.TERM)
//	select {
//	case sig := <-c:
//		log.Printf("received %v", sig)
//	case <-done:
//	}
//
// The first subscription (or an explicit Start) diverts every supported
// signal away from its default action for the rest of the process. From then
// on a single listener goroutine receives each occurrence and fans it out to
// every channel subscribed to that signal. Sends never block the listener: a
// subscriber that falls more than its buffer behind loses occurrences, and
// only that subscriber does.
//
// Subscriptions cannot be removed and the returned channels are never
// closed. A subscriber that no longer cares simply stops reading.
//
// Platforms without POSIX signals are not supported; Start and Notify return
// ErrUnsupportedPlatform there.
package chansignal

// Default is the process-wide bridge used by the package level functions.
var Default = NewBridge()

// Start diverts the supported signals on the Default bridge.
func Start() error { return Default.Start() }

// Notify subscribes a new channel to sigs on the Default bridge.
func Notify(sigs ...Signal) (<-chan Signal, error) { return Default.Notify(sigs...) }

// NotifyOn subscribes c to sigs on the Default bridge.
func NotifyOn(c chan<- Signal, sigs ...Signal) error { return Default.NotifyOn(c, sigs...) }

// MustNotify is like Notify but panics on error.
func MustNotify(sigs ...Signal) <-chan Signal { return Default.MustNotify(sigs...) }

// StatsOf returns the Default bridge counters for sig.
func StatsOf(sig Signal) Stats { return Default.Stats(sig) }

// Raise sends sig to the current process.
func Raise(sig Signal) error {
	if !platformSupported {
		return ErrUnsupportedPlatform
	}
	if !sig.Supported() {
		return ErrUnsupportedSignal
	}
	return raise(sig)
}

// Kill sends sig to the process pid.
func Kill(pid int, sig Signal) error {
	if !platformSupported {
		return ErrUnsupportedPlatform
	}
	if !sig.Supported() {
		return ErrUnsupportedSignal
	}
	return kill(pid, sig)
}
