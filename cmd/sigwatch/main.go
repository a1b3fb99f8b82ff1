// Command sigwatch subscribes to OS signals through chansignal and prints
// every notification it receives. It doubles as a small tool for sending
// signals and listing the ones chansignal supports.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

const (
	appName  = "sigwatch"
	appUsage = "watch, list and send OS signals as chansignal sees them"
)

type sigwatch struct {
	log *logrus.Logger
	cfg *Config
}

func newApp(log *logrus.Logger) *cli.App {
	s := &sigwatch{log: log, cfg: defaultConfig()}

	app := cli.NewApp()
	app.Name = appName
	app.Usage = appUsage
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output for logging",
		},
		&cli.StringFlag{
			Name:  "log",
			Usage: "write logs to this file, rotated by size (default is stderr)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "set the log format ('text' or 'json')",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "load settings from a TOML file",
		},
	}
	app.Commands = []*cli.Command{
		s.watchCommand(),
		s.listCommand(),
		s.sendCommand(),
	}
	app.Before = s.before
	return app
}

func (s *sigwatch) before(ctx *cli.Context) error {
	if path := ctx.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		s.cfg = cfg
	}
	return configLogrus(ctx, s.log, s.cfg.Log)
}

func main() {
	log := logrus.StandardLogger()
	if err := newApp(log).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
