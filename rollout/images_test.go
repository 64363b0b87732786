package rollout

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/quayside/ferry/env"
	"github.com/quayside/ferry/test"
	"github.com/stretchr/testify/assert"
)

func TestParseImagePairs(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		pairs, err := ParseImagePairs([]string{"web=nginx:2", "sidecar=logger:2"})
		assert.NoError(t, err)
		assert.Equal(t, []ImagePair{
			{Name: "web", Image: "nginx:2"},
			{Name: "sidecar", Image: "logger:2"},
		}, pairs)
	})
	t.Run("empty input", func(t *testing.T) {
		pairs, err := ParseImagePairs(nil)
		assert.NoError(t, err)
		assert.Nil(t, pairs)
	})
	t.Run("image reference may contain =", func(t *testing.T) {
		pairs, err := ParseImagePairs([]string{"web=nginx@sha256:ab=cd"})
		assert.NoError(t, err)
		assert.Equal(t, "nginx@sha256:ab=cd", pairs[0].Image)
	})
	t.Run("malformed", func(t *testing.T) {
		for _, v := range []string{"web", "=nginx:2", "web="} {
			_, err := ParseImagePairs([]string{v})
			assert.Error(t, err, v)
		}
	})
}

func TestCopyImagesFromService(t *testing.T) {
	newExecutor := func(t *testing.T, envars *env.Envars) (*test.EcsServer, *executor) {
		ctrl := gomock.NewController(t)
		server, ecsMock := test.Setup(ctrl)
		return server, &executor{env: envars, ecs: ecsMock, time: test.NewFakeTime()}
	}
	t.Run("copies pairs in container order", func(t *testing.T) {
		server, e := newExecutor(t, &env.Envars{Cluster: "default", Service: "target", CopyImagesFrom: "source"})
		td, _ := server.TaskDefs.Register(test.RegisterInputOf(test.DefaultTaskDefinition()))
		server.AddService("source", td, 1)
		pairs, err := e.copyImagesFromService(context.Background(), "source")
		assert.NoError(t, err)
		assert.Equal(t, []ImagePair{
			{Name: "web", Image: "nginx:1"},
			{Name: "sidecar", Image: "logger:1"},
		}, pairs)
	})
	t.Run("source service not found", func(t *testing.T) {
		_, e := newExecutor(t, &env.Envars{Cluster: "default", Service: "target", CopyImagesFrom: "missing"})
		_, err := e.copyImagesFromService(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrSourceServiceNotFound)
	})
	t.Run("zero containers aborts", func(t *testing.T) {
		server, e := newExecutor(t, &env.Envars{Cluster: "default", Service: "target", CopyImagesFrom: "empty"})
		empty := test.DefaultTaskDefinition()
		empty.ContainerDefinitions = nil
		td, _ := server.TaskDefs.Register(test.RegisterInputOf(empty))
		server.AddService("empty", td, 1)
		_, err := e.copyImagesFromService(context.Background(), "empty")
		assert.ErrorIs(t, err, ErrNoImagesFound)
	})
}
