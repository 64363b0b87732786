package rollout

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// BuildCandidate derives a registerable task definition from a snapshot
// fetched from ECS, with the given images patched in. The snapshot is
// never mutated: container definitions and volumes are copied before any
// write so the candidate owns its storage.
//
// Pairs are applied in order against the first container whose name
// matches; names with no matching container are ignored. The returned
// bool is true iff at least one container image actually changed.
func BuildCandidate(src *ecstypes.TaskDefinition, images []ImagePair) (*ecs.RegisterTaskDefinitionInput, bool) {
	candidate := &ecs.RegisterTaskDefinitionInput{
		Family:               src.Family,
		TaskRoleArn:          src.TaskRoleArn,
		Volumes:              append([]ecstypes.Volume(nil), src.Volumes...),
		ContainerDefinitions: append([]ecstypes.ContainerDefinition(nil), src.ContainerDefinitions...),
	}
	modified := false
	for _, pair := range images {
		for i := range candidate.ContainerDefinitions {
			c := &candidate.ContainerDefinitions[i]
			if c.Name == nil || *c.Name != pair.Name {
				continue
			}
			if c.Image == nil || *c.Image != pair.Image {
				c.Image = aws.String(pair.Image)
				modified = true
			}
			break
		}
	}
	return candidate, modified
}
