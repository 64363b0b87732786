package rollout

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"golang.org/x/xerrors"
)

// ImagePair binds a container name to the image reference it should run.
type ImagePair struct {
	Name  string
	Image string
}

// ParseImagePairs parses repeated --image values of the form
// "containerName=imageReference". Pairs keep their input order; when the
// same container is named more than once, patching applies pairs in order
// so the last pair wins.
func ParseImagePairs(values []string) ([]ImagePair, error) {
	var pairs []ImagePair
	for _, v := range values {
		name, image, ok := strings.Cut(v, "=")
		if !ok || name == "" || image == "" {
			return nil, xerrors.Errorf("invalid --image value '%s': expected containerName=imageReference", v)
		}
		pairs = append(pairs, ImagePair{Name: name, Image: image})
	}
	return pairs, nil
}

// copyImagesFromService enumerates every container of the source
// service's currently deployed task definition as an ImagePair,
// preserving container order.
func (e *executor) copyImagesFromService(ctx context.Context, source string) ([]ImagePair, error) {
	o, err := e.ecs.DescribeServices(ctx, &ecs.DescribeServicesInput{
		Cluster:  &e.env.Cluster,
		Services: []string{source},
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to describe source service '%s': %w", source, err)
	}
	if len(o.Services) == 0 {
		return nil, xerrors.Errorf("'%s' in cluster '%s': %w", source, e.env.Cluster, ErrSourceServiceNotFound)
	}
	td, err := e.ecs.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: o.Services[0].TaskDefinition,
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to describe task definition of '%s': %w", source, err)
	}
	var pairs []ImagePair
	for _, c := range td.TaskDefinition.ContainerDefinitions {
		pairs = append(pairs, ImagePair{Name: *c.Name, Image: *c.Image})
	}
	if len(pairs) == 0 {
		// copying zero images is never useful; abort instead of
		// silently registering an unchanged definition
		return nil, xerrors.Errorf("'%s': %w", source, ErrNoImagesFound)
	}
	log.Infof("images copied from service '%s':", source)
	for _, p := range pairs {
		log.Infof("  %s: %s", p.Name, p.Image)
	}
	return pairs, nil
}
