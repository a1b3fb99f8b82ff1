package chansignal

import (
	"os"
	"os/signal"
)

// SignalSource diverts OS signals to a channel. It is primarily useful for
// injecting a fake source during testing.
type SignalSource interface {
	// Notify relays every future occurrence of sigs to c. After it returns,
	// none of sigs runs its default action.
	Notify(c chan<- os.Signal, sigs ...os.Signal)
}

// runtimeSource is the production SignalSource. The Go runtime's signal
// handler only records the occurrence; a runtime goroutine then waits for
// recorded signals in ordinary code and relays them to c.
type runtimeSource struct{}

func (runtimeSource) Notify(c chan<- os.Signal, sigs ...os.Signal) {
	signal.Notify(c, sigs...)
}
