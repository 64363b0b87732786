package prompt_test

import (
	"strings"
	"testing"

	"github.com/quayside/ferry/cli/ferry/prompt"
	"github.com/quayside/ferry/env"
	"github.com/stretchr/testify/assert"
)

func TestPrompter(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		t.Run("yes", func(t *testing.T) {
			reader := strings.NewReader("yes\n")
			prompter := prompt.NewPrompter(reader)
			err := prompter.Confirm("test", "yes")
			assert.NoError(t, err)
		})
		t.Run("no", func(t *testing.T) {
			reader := strings.NewReader("no\n")
			prompter := prompt.NewPrompter(reader)
			err := prompter.Confirm("test", "yes")
			assert.Error(t, err)
		})
	})
	envars := &env.Envars{
		Region:  "ap-northeast-1",
		Cluster: "test-cluster",
		Service: "test-service",
	}
	t.Run("ConfirmService", func(t *testing.T) {
		t.Run("ok", func(t *testing.T) {
			reader := strings.NewReader("test-cluster\ntest-service\n")
			prompter := prompt.NewPrompter(reader)
			err := prompter.ConfirmService(envars)
			assert.NoError(t, err)
		})
		t.Run("cluster mismatch", func(t *testing.T) {
			reader := strings.NewReader("different-cluster\ntest-service\n")
			prompter := prompt.NewPrompter(reader)
			err := prompter.ConfirmService(envars)
			assert.Error(t, err)
		})
		t.Run("service mismatch", func(t *testing.T) {
			reader := strings.NewReader("test-cluster\ndifferent-service\n")
			prompter := prompt.NewPrompter(reader)
			err := prompter.ConfirmService(envars)
			assert.Error(t, err)
		})
	})
}
