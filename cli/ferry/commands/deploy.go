package commands

import (
	"github.com/apex/log"
	"github.com/quayside/ferry/cli/ferry/prompt"
	"github.com/quayside/ferry/env"
	"github.com/urfave/cli/v2"
)

func (c *FerryCommands) Deploy(envars *env.Envars) *cli.Command {
	images := cli.NewStringSlice()
	return &cli.Command{
		Name:        "deploy",
		Usage:       "register a new task definition revision and roll the service onto it",
		Description: "registers a new revision with patched container images, updates the service, and waits until a task bound to the new revision is observed running",
		Flags: []cli.Flag{
			RegionFlag(&envars.Region),
			ClusterFlag(&envars.Cluster),
			ServiceNameFlag(&envars.Service),
			TaskDefinitionFlag(&envars.TaskDefinition),
			CopyImagesFlag(&envars.CopyImagesFrom),
			UpdateFlag(&envars.Update),
			ImageFlag(images),
			TimeoutFlag(&envars.TimeoutSeconds),
			OnlyIfModifiedFlag(&envars.OnlyIfModified),
		},
		Action: func(ctx *cli.Context) error {
			envars.Images = images.Value()
			ferry, err := c.provider(ctx.Context, envars)
			if err != nil {
				return err
			}
			if !envars.CI && envars.Service != "" {
				if err := prompt.NewPrompter(c.stdin).ConfirmService(envars); err != nil {
					return err
				}
			}
			result, err := ferry.Deploy(ctx.Context)
			if err != nil {
				if result != nil && !result.ServiceIntact {
					log.Errorf("😭 deployment failed and service '%s' might be changed. check in console!! error: %s", envars.Service, err)
				} else {
					log.Errorf("🤕 deployment failed but service is not changed. error: %s", err)
				}
				return err
			}
			if result.NoOp {
				log.Infof("nothing modified. no new revision registered.")
				return nil
			}
			log.Infof("🎉 deployment completed successfully! 🎉")
			return nil
		},
	}
}
