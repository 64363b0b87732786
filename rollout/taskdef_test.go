package rollout_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/quayside/ferry/rollout"
	"github.com/stretchr/testify/assert"
)

func snapshot() *ecstypes.TaskDefinition {
	return &ecstypes.TaskDefinition{
		Family:      aws.String("myapp"),
		TaskRoleArn: aws.String("arn:aws:iam::012345678910:role/myapp"),
		Volumes:     []ecstypes.Volume{{Name: aws.String("data")}},
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{Name: aws.String("web"), Image: aws.String("nginx:1")},
			{Name: aws.String("sidecar"), Image: aws.String("logger:1")},
		},
	}
}

func TestBuildCandidate(t *testing.T) {
	t.Run("patches matching container", func(t *testing.T) {
		src := snapshot()
		candidate, modified := rollout.BuildCandidate(src, []rollout.ImagePair{
			{Name: "web", Image: "nginx:2"},
		})
		assert.True(t, modified)
		assert.Equal(t, "nginx:2", *candidate.ContainerDefinitions[0].Image)
		assert.Equal(t, "logger:1", *candidate.ContainerDefinitions[1].Image)
		assert.Equal(t, "myapp", *candidate.Family)
		assert.Equal(t, *src.TaskRoleArn, *candidate.TaskRoleArn)
		assert.Len(t, candidate.Volumes, 1)
	})
	t.Run("does not mutate the snapshot", func(t *testing.T) {
		src := snapshot()
		_, modified := rollout.BuildCandidate(src, []rollout.ImagePair{
			{Name: "web", Image: "nginx:2"},
		})
		assert.True(t, modified)
		assert.Equal(t, "nginx:1", *src.ContainerDefinitions[0].Image)
	})
	t.Run("identical images yield modified=false", func(t *testing.T) {
		candidate, modified := rollout.BuildCandidate(snapshot(), []rollout.ImagePair{
			{Name: "web", Image: "nginx:1"},
			{Name: "sidecar", Image: "logger:1"},
		})
		assert.False(t, modified)
		assert.Equal(t, "nginx:1", *candidate.ContainerDefinitions[0].Image)
		assert.Equal(t, "logger:1", *candidate.ContainerDefinitions[1].Image)
	})
	t.Run("unknown container names are ignored", func(t *testing.T) {
		_, modified := rollout.BuildCandidate(snapshot(), []rollout.ImagePair{
			{Name: "nosuch", Image: "nginx:2"},
		})
		assert.False(t, modified)
	})
	t.Run("last pair wins for duplicate names", func(t *testing.T) {
		candidate, modified := rollout.BuildCandidate(snapshot(), []rollout.ImagePair{
			{Name: "web", Image: "nginx:2"},
			{Name: "web", Image: "nginx:3"},
		})
		assert.True(t, modified)
		assert.Equal(t, "nginx:3", *candidate.ContainerDefinitions[0].Image)
	})
	t.Run("no images registers unchanged", func(t *testing.T) {
		candidate, modified := rollout.BuildCandidate(snapshot(), nil)
		assert.False(t, modified)
		assert.Equal(t, "nginx:1", *candidate.ContainerDefinitions[0].Image)
	})
}
