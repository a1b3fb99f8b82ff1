package chansignal

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// Config is the file-friendly form of the bridge options. The field tags
// match the [bridge] table of a TOML configuration file.
type Config struct {
	// Capacity is the buffer size of channels created by Notify.
	// Zero means DefaultCapacity.
	Capacity int `toml:"capacity"`

	// LogLevel is a logrus level name. Empty keeps the logger as given.
	LogLevel string `toml:"log_level"`
}

func (c Config) Validate() error {
	if c.Capacity < 0 {
		return xerrors.Errorf("capacity %d: must not be negative", c.Capacity)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// Options converts c into bridge options. The logger gets a child logger at
// the configured level so other users of l are unaffected.
func (c Config) Options(l *logrus.Logger) []Option {
	opts := []Option{WithCapacity(c.Capacity)}
	if l == nil {
		return opts
	}
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		child := logrus.New()
		child.SetOutput(l.Out)
		child.SetFormatter(l.Formatter)
		child.SetReportCaller(l.ReportCaller)
		child.SetLevel(lvl)
		child.ReplaceHooks(l.Hooks)
		return append(opts, WithLogger(child))
	}
	return append(opts, WithLogger(l))
}
