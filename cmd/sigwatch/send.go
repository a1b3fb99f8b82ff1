package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/srozzo/go-chansignal"
)

func (s *sigwatch) sendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "send a signal to a process",
		ArgsUsage: "PID SIGNAL",
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 2 {
				return xerrors.New("send: expected PID and SIGNAL")
			}
			pid, err := strconv.Atoi(ctx.Args().Get(0))
			if err != nil || pid <= 0 {
				return xerrors.Errorf("send: invalid pid %q", ctx.Args().Get(0))
			}
			sig, err := chansignal.Parse(ctx.Args().Get(1))
			if err != nil {
				return fmt.Errorf("send: %w", err)
			}
			if err := chansignal.Kill(pid, sig); err != nil {
				return fmt.Errorf("send %v to %d: %w", sig, pid, err)
			}
			s.log.WithFields(logrus.Fields{
				"pid":    pid,
				"signal": sig,
			}).Debug("sent")
			return nil
		},
	}
}
