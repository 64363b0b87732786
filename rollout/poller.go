package rollout

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"golang.org/x/xerrors"
)

// ConvergePollInterval is the fixed wait between convergence polls.
const ConvergePollInterval = 3 * time.Second

// awaitConvergence samples the service's running tasks until one of them
// is bound to targetArn, or the configured deadline elapses. An empty
// task list is "not yet converged", not an error: a service between
// deployments may legitimately report nothing for a moment.
func (e *executor) awaitConvergence(ctx context.Context, targetArn string) error {
	deadline := e.env.ConvergeTimeout()
	started := e.time.Now()
	log.Infof("🥚 waiting up to %ds for tasks of '%s' to reach '%s'...", e.env.TimeoutSeconds, e.env.Service, targetArn)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.time.NewTimer(ConvergePollInterval).C:
		}
		converged, err := e.pollOnce(ctx, targetArn)
		if err != nil {
			return err
		}
		if converged {
			log.Infof("🐣 a task bound to '%s' is running!", targetArn)
			return nil
		}
		if elapsed := e.time.Now().Sub(started); elapsed > deadline {
			return xerrors.Errorf("service '%s' after %ds: %w", e.env.Service, int(elapsed.Seconds()), ErrConvergenceTimedOut)
		}
		log.Infof("still waiting for service '%s' to converge...", e.env.Service)
	}
}

func (e *executor) pollOnce(ctx context.Context, targetArn string) (bool, error) {
	listed, err := e.ecs.ListTasks(ctx, &ecs.ListTasksInput{
		Cluster:       &e.env.Cluster,
		ServiceName:   &e.env.Service,
		DesiredStatus: ecstypes.DesiredStatusRunning,
	})
	if err != nil {
		return false, xerrors.Errorf("failed to list tasks of '%s': %w", e.env.Service, err)
	}
	if len(listed.TaskArns) == 0 {
		return false, nil
	}
	described, err := e.ecs.DescribeTasks(ctx, &ecs.DescribeTasksInput{
		Cluster: &e.env.Cluster,
		Tasks:   listed.TaskArns,
	})
	if err != nil {
		return false, xerrors.Errorf("failed to describe tasks of '%s': %w", e.env.Service, err)
	}
	for _, task := range described.Tasks {
		if task.TaskDefinitionArn != nil && *task.TaskDefinitionArn == targetArn {
			return true, nil
		}
	}
	return false, nil
}
