package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/srozzo/go-chansignal"
)

func (s *sigwatch) watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "print every watched signal this process receives",
		Description: `Signals come from -s flags or the config file and default to INT
and TERM. Each notification prints one line: NAME<TAB>NUMBER.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "signal",
				Aliases: []string{"s"},
				Usage:   "signal name or number to watch (repeatable)",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "exit after this many notifications (0 watches forever)",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "buffer size of the subscription channel",
			},
		},
		Action: s.watch,
	}
}

func (s *sigwatch) watch(ctx *cli.Context) error {
	names := ctx.StringSlice("signal")
	if len(names) == 0 {
		names = s.cfg.Signals
	}
	sigs, err := parseSignals(names)
	if err != nil {
		return err
	}

	bcfg := s.cfg.Bridge
	if ctx.IsSet("capacity") {
		bcfg.Capacity = ctx.Int("capacity")
	}
	if err := bcfg.Validate(); err != nil {
		return err
	}
	bridge := chansignal.NewBridge(bcfg.Options(s.log)...)
	c, err := bridge.Notify(sigs...)
	if err != nil {
		return err
	}

	set := chansignal.NewSet(sigs...)
	fmt.Fprintf(ctx.App.Writer, "watching %v pid=%d\n", set, os.Getpid())
	s.log.WithField("signals", set).Info("watching")

	count := ctx.Int("count")
	for seen := 0; count <= 0 || seen < count; {
		select {
		case sig := <-c:
			seen++
			fmt.Fprintf(ctx.App.Writer, "%s\t%d\n", sig, sig.Num())
			s.log.WithFields(logrus.Fields{
				"signal": sig,
				"seen":   seen,
			}).Info("received")
		case <-ctx.Done():
			return nil
		}
	}

	for _, sig := range set.Signals() {
		st := bridge.Stats(sig)
		s.log.WithFields(logrus.Fields{
			"signal":    sig,
			"delivered": st.Delivered,
			"dropped":   st.Dropped,
		}).Debug("stats")
	}
	return nil
}
