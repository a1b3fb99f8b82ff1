package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"

	"github.com/srozzo/go-chansignal"
)

// Config is the layout of the file given with --config.
type Config struct {
	// Signals watched when no -s flag is given.
	Signals []string          `toml:"signals"`
	Bridge  chansignal.Config `toml:"bridge"`
	Log     LogConfig         `toml:"log"`
}

type LogConfig struct {
	File       string `toml:"file"`
	Format     string `toml:"format"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

func defaultConfig() *Config {
	return &Config{
		Signals: []string{"INT", "TERM"},
		Log: LogConfig{
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// loadConfig reads path on top of the defaults. Keys missing from the file
// keep their default values.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, xerrors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parseSignals(c.Signals); err != nil {
		return err
	}
	if err := c.Bridge.Validate(); err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return xerrors.Errorf("log format %q: must be text or json", c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return xerrors.New("log rotation limits must not be negative")
	}
	return nil
}

// parseSignals resolves names or numbers. An empty list is an error because
// there would be nothing to watch.
func parseSignals(names []string) ([]chansignal.Signal, error) {
	if len(names) == 0 {
		return nil, chansignal.ErrNoSignals
	}
	sigs := make([]chansignal.Signal, 0, len(names))
	for _, name := range names {
		sig, err := chansignal.Parse(name)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
