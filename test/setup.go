package test

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/golang/mock/gomock"
	"github.com/quayside/ferry/mocks/mock_awsiface"
)

// Setup returns a gomock EcsClient backed by a stateful EcsServer.
func Setup(ctrl *gomock.Controller) (*EcsServer, *mock_awsiface.MockEcsClient) {
	server := NewEcsServer()
	ecsMock := mock_awsiface.NewMockEcsClient(ctrl)
	ecsMock.EXPECT().DescribeServices(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.DescribeServices).AnyTimes()
	ecsMock.EXPECT().DescribeTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.DescribeTaskDefinition).AnyTimes()
	ecsMock.EXPECT().RegisterTaskDefinition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.RegisterTaskDefinition).AnyTimes()
	ecsMock.EXPECT().UpdateService(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.UpdateService).AnyTimes()
	ecsMock.EXPECT().ListTasks(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.ListTasks).AnyTimes()
	ecsMock.EXPECT().DescribeTasks(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(server.DescribeTasks).AnyTimes()
	return server, ecsMock
}

// RegisterInputOf turns a task definition back into a register input so
// tests can seed the repository from a snapshot shape.
func RegisterInputOf(td *ecstypes.TaskDefinition) *ecs.RegisterTaskDefinitionInput {
	return &ecs.RegisterTaskDefinitionInput{
		Family:               td.Family,
		TaskRoleArn:          td.TaskRoleArn,
		Volumes:              td.Volumes,
		ContainerDefinitions: td.ContainerDefinitions,
	}
}

// DefaultTaskDefinition returns the usual two-container shape used
// across tests.
func DefaultTaskDefinition() *ecstypes.TaskDefinition {
	return &ecstypes.TaskDefinition{
		Family: aws.String("myapp"),
		ContainerDefinitions: []ecstypes.ContainerDefinition{
			{Name: aws.String("web"), Image: aws.String("nginx:1")},
			{Name: aws.String("sidecar"), Image: aws.String("logger:1")},
		},
	}
}
