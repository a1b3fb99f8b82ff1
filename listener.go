package chansignal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// listener owns the only receive side of the intake channel. Receiving from
// it is the single point where the bridge waits for signals.
type listener struct {
	intake   <-chan os.Signal
	registry *registry
	log      logrus.FieldLogger
}

func (l *listener) run() {
	for {
		osSig, ok := <-l.intake
		if !ok {
			l.log.Error("chansignal: signal intake closed, delivery cannot continue")
			panic(ErrIntakeClosed)
		}
		sig, ok := FromOS(osSig)
		if !ok {
			l.log.WithField("signal", osSig).Warn("chansignal: ignoring signal outside the supported set")
			continue
		}
		delivered, dropped := l.registry.deliver(sig)
		l.log.WithFields(logrus.Fields{
			"signal":    sig,
			"delivered": delivered,
			"dropped":   dropped,
		}).Debug("chansignal: fanned out")
	}
}
