package rollout

import (
	"context"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/quayside/ferry/awsiface"
	"github.com/quayside/ferry/env"
	"github.com/quayside/ferry/types"
	"golang.org/x/xerrors"
)

type executor struct {
	env  *env.Envars
	ecs  awsiface.EcsClient
	time types.Time
}

type Input struct {
	Env  *env.Envars
	Ecs  awsiface.EcsClient
	Time types.Time
}

func NewExecutor(input *Input) types.Ferry {
	return &executor{
		env:  input.Env,
		ecs:  input.Ecs,
		time: input.Time,
	}
}

// Deploy runs the whole rollout sequence: resolve the base task
// definition, patch images, register a new revision, and either stop
// there (task-definition-only rollout) or update the service and wait
// for the new revision to be observed running.
func (e *executor) Deploy(ctx context.Context) (*types.DeployResult, error) {
	result := &types.DeployResult{ServiceIntact: true}
	mode, err := env.ResolveMode(e.env)
	if err != nil {
		return result, err
	}
	baseArn, err := e.resolveBaseTaskDefinitionArn(ctx, mode)
	if err != nil {
		return result, err
	}
	log.Infof("base task definition: '%s'", baseArn)
	images, err := e.resolveImages(ctx, mode)
	if err != nil {
		return result, err
	}
	described, err := e.ecs.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: &baseArn,
	})
	if err != nil {
		return result, xerrors.Errorf("failed to describe task definition '%s': %w", baseArn, err)
	}
	candidate, modified := BuildCandidate(described.TaskDefinition, images)
	if e.env.OnlyIfModified && !modified {
		log.Infof("no container image changed and --only-if-modified is set. skipping registration.")
		result.NoOp = true
		return result, nil
	}
	log.Infof("registering new task definition for family '%s'...", *candidate.Family)
	registered, err := e.ecs.RegisterTaskDefinition(ctx, candidate)
	if err != nil {
		return result, xerrors.Errorf("failed to register task definition: %w", err)
	}
	td := registered.TaskDefinition
	result.TaskDefinition = td
	log.Infof("🐤 task definition '%s:%d' has been registered", *td.Family, td.Revision)
	if e.env.Service == "" {
		log.Infof("no service name given. stopping after registration.")
		return result, nil
	}
	log.Infof("updating service '%s' to '%s:%d'...", e.env.Service, *td.Family, td.Revision)
	if _, err := e.ecs.UpdateService(ctx, &ecs.UpdateServiceInput{
		Cluster:        &e.env.Cluster,
		Service:        &e.env.Service,
		TaskDefinition: td.TaskDefinitionArn,
	}); err != nil {
		return result, xerrors.Errorf("failed to update service '%s': %w", e.env.Service, err)
	}
	result.ServiceIntact = false
	if err := e.awaitConvergence(ctx, *td.TaskDefinitionArn); err != nil {
		return result, err
	}
	log.Infof("🐥 service '%s' successfully rolled out to '%s:%d'!", e.env.Service, *td.Family, td.Revision)
	return result, nil
}

// resolveBaseTaskDefinitionArn picks the task definition the candidate
// will be built from: the target service's current one when updating,
// or the explicitly given name/ARN.
func (e *executor) resolveBaseTaskDefinitionArn(ctx context.Context, mode env.Mode) (string, error) {
	switch mode {
	case env.ModeUpdateFromService, env.ModeCopyFromService:
		o, err := e.ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  &e.env.Cluster,
			Services: []string{e.env.Service},
		})
		if err != nil {
			return "", xerrors.Errorf("failed to describe service '%s': %w", e.env.Service, err)
		}
		if len(o.Services) == 0 || o.Services[0].TaskDefinition == nil {
			return "", xerrors.Errorf("service '%s' in cluster '%s': %w", e.env.Service, e.env.Cluster, ErrTaskArnUnresolved)
		}
		return *o.Services[0].TaskDefinition, nil
	case env.ModeExplicitTaskDefinition:
		return e.env.TaskDefinition, nil
	}
	// unreachable given ResolveMode's exhaustiveness, but checked
	return "", ErrTaskArnUnresolved
}

func (e *executor) resolveImages(ctx context.Context, mode env.Mode) ([]ImagePair, error) {
	if mode == env.ModeCopyFromService {
		return e.copyImagesFromService(ctx, e.env.CopyImagesFrom)
	}
	return ParseImagePairs(e.env.Images)
}
