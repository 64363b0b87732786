package main

import (
	"fmt"
	"log"
	"os"

	"github.com/quayside/ferry/cli/ferry/commands"
	"github.com/quayside/ferry/env"
	"github.com/urfave/cli/v2"
)

// set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "ferry"
	app.Version = fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date)
	app.Usage = "A rolling deployment tool for AWS ECS"
	app.Description = "Registers a new task definition revision and rolls an ECS service onto it"
	envars := env.Envars{}
	cmds := commands.NewFerryCommands(os.Stdin, commands.DefaultFerryProvider)
	app.Commands = []*cli.Command{
		cmds.Deploy(&envars),
		cmds.Upgrade(version),
	}
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "ci",
			Usage:       "CI mode. Skip all confirmations.",
			EnvVars:     []string{"CI"},
			Destination: &envars.CI,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
