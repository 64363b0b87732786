package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecstypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/google/uuid"
)

// EcsServer is a stateful in-memory stand-in for the ECS control plane.
// Services keep their desired count of running tasks; updating a
// service's task definition replaces its tasks with ones bound to the
// new revision.
type EcsServer struct {
	Services map[string]*ecstypes.Service
	Tasks    map[string]*ecstypes.Task
	TaskDefs *TaskDefinitionRepository
	mux      sync.Mutex
}

func NewEcsServer() *EcsServer {
	return &EcsServer{
		Services: make(map[string]*ecstypes.Service),
		Tasks:    make(map[string]*ecstypes.Task),
		TaskDefs: NewTaskDefinitionRepository(),
	}
}

// AddService registers a service with count running tasks bound to the
// given task definition.
func (s *EcsServer) AddService(name string, td *ecstypes.TaskDefinition, count int) *ecstypes.Service {
	s.mux.Lock()
	defer s.mux.Unlock()
	st := "ACTIVE"
	arn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:service/%s", name)
	svc := &ecstypes.Service{
		ServiceName:    &name,
		ServiceArn:     &arn,
		Status:         &st,
		TaskDefinition: td.TaskDefinitionArn,
		DesiredCount:   int32(count),
		RunningCount:   int32(count),
	}
	s.Services[name] = svc
	for i := 0; i < count; i++ {
		s.startTaskLocked(name, td.TaskDefinitionArn)
	}
	return svc
}

func (s *EcsServer) startTaskLocked(service string, tdArn *string) {
	taskArn := fmt.Sprintf("arn:aws:ecs:us-west-2:012345678910:task/%s", uuid.New().String())
	last := "RUNNING"
	s.Tasks[taskArn] = &ecstypes.Task{
		TaskArn:           &taskArn,
		Group:             aws.String(fmt.Sprintf("service:%s", service)),
		LastStatus:        &last,
		TaskDefinitionArn: tdArn,
	}
}

func (s *EcsServer) DescribeServices(_ context.Context, input *ecs.DescribeServicesInput, _ ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var services []ecstypes.Service
	for _, name := range input.Services {
		if svc, ok := s.Services[name]; ok {
			services = append(services, *svc)
		}
	}
	return &ecs.DescribeServicesOutput{Services: services}, nil
}

func (s *EcsServer) DescribeTaskDefinition(_ context.Context, input *ecs.DescribeTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.DescribeTaskDefinitionOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td := s.TaskDefs.Get(*input.TaskDefinition)
	if td == nil {
		return nil, fmt.Errorf("task definition not found: %s", *input.TaskDefinition)
	}
	return &ecs.DescribeTaskDefinitionOutput{TaskDefinition: td}, nil
}

func (s *EcsServer) RegisterTaskDefinition(_ context.Context, input *ecs.RegisterTaskDefinitionInput, _ ...func(*ecs.Options)) (*ecs.RegisterTaskDefinitionOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	td, err := s.TaskDefs.Register(input)
	if err != nil {
		return nil, err
	}
	return &ecs.RegisterTaskDefinitionOutput{TaskDefinition: td}, nil
}

func (s *EcsServer) UpdateService(_ context.Context, input *ecs.UpdateServiceInput, _ ...func(*ecs.Options)) (*ecs.UpdateServiceOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	svc, ok := s.Services[*input.Service]
	if !ok {
		return nil, fmt.Errorf("service not found: %s", *input.Service)
	}
	if input.TaskDefinition != nil {
		svc.TaskDefinition = input.TaskDefinition
		group := fmt.Sprintf("service:%s", *svc.ServiceName)
		for arn, task := range s.Tasks {
			if task.Group != nil && *task.Group == group {
				delete(s.Tasks, arn)
			}
		}
		for i := 0; i < int(svc.DesiredCount); i++ {
			s.startTaskLocked(*svc.ServiceName, svc.TaskDefinition)
		}
	}
	return &ecs.UpdateServiceOutput{Service: svc}, nil
}

func (s *EcsServer) ListTasks(_ context.Context, input *ecs.ListTasksInput, _ ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var arns []string
	group := fmt.Sprintf("service:%s", *input.ServiceName)
	for arn, task := range s.Tasks {
		if task.Group != nil && *task.Group == group {
			arns = append(arns, arn)
		}
	}
	return &ecs.ListTasksOutput{TaskArns: arns}, nil
}

func (s *EcsServer) DescribeTasks(_ context.Context, input *ecs.DescribeTasksInput, _ ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	var tasks []ecstypes.Task
	for _, arn := range input.Tasks {
		if task, ok := s.Tasks[arn]; ok {
			tasks = append(tasks, *task)
		}
	}
	return &ecs.DescribeTasksOutput{Tasks: tasks}, nil
}
