package commands

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/quayside/ferry/awsiface"
	"github.com/quayside/ferry/env"
	"github.com/quayside/ferry/rollout"
	"github.com/quayside/ferry/timeout"
	"github.com/quayside/ferry/types"
)

// FerryProvider builds the deployment executor for a validated Envars.
// Swapped for a stub in command tests.
type FerryProvider func(ctx context.Context, envars *env.Envars) (types.Ferry, error)

type FerryCommands struct {
	stdin    io.Reader
	provider FerryProvider
}

func NewFerryCommands(stdin io.Reader, provider FerryProvider) *FerryCommands {
	return &FerryCommands{stdin: stdin, provider: provider}
}

// DefaultFerryProvider resolves the AWS config (region from flag, env,
// then shared config) and wires the real ECS client.
func DefaultFerryProvider(ctx context.Context, envars *env.Envars) (types.Ferry, error) {
	// reject invalid flag combinations before any AWS traffic
	if _, err := env.ResolveMode(envars); err != nil {
		return nil, err
	}
	var opts []func(*config.LoadOptions) error
	if envars.Region != "" {
		opts = append(opts, config.WithRegion(envars.Region))
	}
	conf := awsiface.MustLoadConfig(ctx, opts...)
	envars.Region = conf.Region
	if err := env.EnsureEnvars(envars); err != nil {
		return nil, err
	}
	return rollout.NewExecutor(&rollout.Input{
		Env:  envars,
		Ecs:  ecs.NewFromConfig(conf),
		Time: &timeout.Time{},
	}), nil
}
