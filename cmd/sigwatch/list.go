package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/srozzo/go-chansignal"
)

func (s *sigwatch) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the signals chansignal can deliver on this platform",
		Action: func(ctx *cli.Context) error {
			for _, sig := range chansignal.All() {
				fmt.Fprintf(ctx.App.Writer, "%s\t%d\n", sig, sig.Num())
			}
			return nil
		},
	}
}
