package rollout

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/golang/mock/gomock"
	"github.com/quayside/ferry/env"
	"github.com/quayside/ferry/mocks/mock_awsiface"
	"github.com/quayside/ferry/test"
	"github.com/stretchr/testify/assert"
)

const targetArn = "arn:aws:ecs:us-west-2:012345678910:task-definition/myapp:2"
const staleArn = "arn:aws:ecs:us-west-2:012345678910:task-definition/myapp:1"

func taskOutput(tdArn string) *ecs.DescribeTasksOutput {
	return &ecs.DescribeTasksOutput{
		Tasks: []ecstypes.Task{{
			TaskArn:           aws.String("arn:aws:ecs:us-west-2:012345678910:task/1"),
			TaskDefinitionArn: aws.String(tdArn),
		}},
	}
}

func TestAwaitConvergence(t *testing.T) {
	newExecutor := func(t *testing.T, timeoutSeconds int) (*executor, *mock_awsiface.MockEcsClient, *test.Time) {
		ctrl := gomock.NewController(t)
		ecsMock := mock_awsiface.NewMockEcsClient(ctrl)
		fake := test.NewFakeTime()
		e := &executor{
			env:  &env.Envars{Cluster: "default", Service: "myapp", TimeoutSeconds: timeoutSeconds},
			ecs:  ecsMock,
			time: fake,
		}
		return e, ecsMock, fake
	}
	t.Run("converges when second poll observes the target revision", func(t *testing.T) {
		e, ecsMock, fake := newExecutor(t, 60)
		started := fake.Now()
		ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ecs.ListTasksOutput{
			TaskArns: []string{"arn:aws:ecs:us-west-2:012345678910:task/1"},
		}, nil).Times(2)
		gomock.InOrder(
			ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(taskOutput(staleArn), nil),
			ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(taskOutput(targetArn), nil),
		)
		err := e.awaitConvergence(context.Background(), targetArn)
		assert.NoError(t, err)
		// exactly two poll intervals elapsed
		assert.Equal(t, 2*ConvergePollInterval, fake.Now().Sub(started))
	})
	t.Run("empty task list is not yet converged", func(t *testing.T) {
		e, ecsMock, _ := newExecutor(t, 60)
		gomock.InOrder(
			ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ecs.ListTasksOutput{}, nil),
			ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ecs.ListTasksOutput{
				TaskArns: []string{"arn:aws:ecs:us-west-2:012345678910:task/1"},
			}, nil),
		)
		ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(taskOutput(targetArn), nil)
		err := e.awaitConvergence(context.Background(), targetArn)
		assert.NoError(t, err)
	})
	t.Run("times out once elapsed exceeds the deadline", func(t *testing.T) {
		// interval=3s, timeout=5s: first poll at 3s keeps waiting,
		// second poll at 6s exceeds the deadline
		e, ecsMock, fake := newExecutor(t, 5)
		started := fake.Now()
		ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).Return(&ecs.ListTasksOutput{}, nil).Times(2)
		err := e.awaitConvergence(context.Background(), targetArn)
		assert.ErrorIs(t, err, ErrConvergenceTimedOut)
		assert.Equal(t, 6*time.Second, fake.Now().Sub(started))
	})
}
