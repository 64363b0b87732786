package types

import (
	"context"
	"time"

	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// Time abstracts the clock so that polling loops can be tested
// without real delays.
type Time interface {
	Now() time.Time
	NewTimer(d time.Duration) *time.Timer
}

// Ferry is the top-level deployment interface.
type Ferry interface {
	Deploy(ctx context.Context) (*DeployResult, error)
}

// DeployResult reports the terminal state of a single rollout.
type DeployResult struct {
	// TaskDefinition is the revision registered during this run.
	// Nil when registration was skipped.
	TaskDefinition *ecstypes.TaskDefinition
	// NoOp is true when no image changed and --only-if-modified
	// short-circuited the run before registration.
	NoOp bool
	// ServiceIntact is true while the live service has not been touched.
	ServiceIntact bool
}
