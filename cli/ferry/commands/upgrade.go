package commands

import (
	"github.com/quayside/ferry/cli/ferry/upgrade"
	"github.com/urfave/cli/v2"
)

func (c *FerryCommands) Upgrade(currVersion string) *cli.Command {
	var preRelease bool
	return &cli.Command{
		Name:  "upgrade",
		Usage: "upgrade ferry binary with the latest version",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "pre-release",
				Usage:       "include pre-release versions",
				Destination: &preRelease,
			},
		},
		Action: func(ctx *cli.Context) error {
			return upgrade.Upgrade(&upgrade.Input{
				CurrentVersion: currVersion,
				PreRelease:     preRelease,
			})
		},
	}
}
