package commands

import (
	"github.com/quayside/ferry/env"
	"github.com/urfave/cli/v2"
)

func RegionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "region",
		Aliases:     []string{"r"},
		EnvVars:     []string{env.RegionKey},
		Usage:       "aws region for ecs. if not specified, try to load from aws sessions automatically",
		Destination: dest,
	}
}

func ClusterFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "cluster",
		Aliases:     []string{"c"},
		EnvVars:     []string{env.ClusterKey},
		Usage:       "ecs cluster name",
		Value:       env.DefaultCluster,
		Destination: dest,
	}
}

func ServiceNameFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "service-name",
		Aliases:     []string{"n"},
		EnvVars:     []string{env.ServiceKey},
		Usage:       "service to update. if not specified, only a new task definition revision is registered",
		Destination: dest,
	}
}

func TaskDefinitionFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "task-definition",
		Aliases:     []string{"d"},
		EnvVars:     []string{env.TaskDefinitionKey},
		Usage:       "name, family:revision, or full arn of the base task definition. conflicts with --update",
		Destination: dest,
	}
}

func CopyImagesFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "copy-images",
		Aliases:     []string{"k"},
		EnvVars:     []string{env.CopyImagesFromKey},
		Usage:       "service whose current container images are copied into the new revision. implies --update",
		Destination: dest,
	}
}

func UpdateFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "update",
		Aliases:     []string{"u"},
		Usage:       "base the new revision on the service's currently deployed task definition",
		Destination: dest,
	}
}

func ImageFlag(dest *cli.StringSlice) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:        "image",
		Aliases:     []string{"i"},
		Usage:       "containerName=imageReference pair to patch into the new revision. repeatable",
		Destination: dest,
	}
}

func TimeoutFlag(dest *int) *cli.IntFlag {
	return &cli.IntFlag{
		Name:        "timeout",
		Aliases:     []string{"t"},
		EnvVars:     []string{env.TimeoutKey},
		Usage:       "max duration seconds for waiting the new revision to be observed running",
		Value:       env.DefaultTimeoutSeconds,
		Destination: dest,
	}
}

func OnlyIfModifiedFlag(dest *bool) *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "only-if-modified",
		Aliases:     []string{"O"},
		Usage:       "skip registration when no container image actually changed",
		Destination: dest,
	}
}
