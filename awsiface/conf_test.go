package awsiface

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
)

func TestMustLoadConfig_WithRegion(t *testing.T) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustLoadConfig panicked unexpectedly: %v", r)
		}
	}()

	cfg := MustLoadConfig(ctx, config.WithRegion("us-west-2"))

	if cfg.Region != "us-west-2" {
		t.Errorf("expected region us-west-2, got %s", cfg.Region)
	}
}

func TestMustLoadConfig_Panic(t *testing.T) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustLoadConfig to panic with invalid option, but it didn't")
		}
	}()

	invalidOpt := func(*config.LoadOptions) error {
		return errors.New("forced error")
	}

	MustLoadConfig(ctx, invalidOpt)
}
