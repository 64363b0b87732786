package env

import (
	"time"

	"golang.org/x/xerrors"
)

// Envars holds every input of a single deployment. Values are filled
// from CLI flags with env var fallbacks (see cli/ferry/commands/flags.go)
// and validated once by EnsureEnvars before any AWS call is made.
type Envars struct {
	_              struct{} `type:"struct"`
	CI             bool     `json:"ci" type:"bool"`
	Region         string   `json:"region" type:"string"`
	Cluster        string   `json:"cluster" type:"string" required:"true"`
	Service        string   `json:"service" type:"string"`
	TaskDefinition string   `json:"taskDefinition" type:"string"`
	CopyImagesFrom string   `json:"copyImagesFrom" type:"string"`
	Update         bool     `json:"update" type:"bool"`
	Images         []string `json:"images"`
	TimeoutSeconds int      `json:"timeout"`
	OnlyIfModified bool     `json:"onlyIfModified" type:"bool"`
}

// required
const RegionKey = "FERRY_REGION"
const ClusterKey = "FERRY_CLUSTER"

// optional
const ServiceKey = "FERRY_SERVICE"
const TaskDefinitionKey = "FERRY_TASK_DEFINITION"
const CopyImagesFromKey = "FERRY_COPY_IMAGES_FROM"
const TimeoutKey = "FERRY_TIMEOUT"

const DefaultCluster = "default"
const DefaultTimeoutSeconds = 60

var ErrRegionUnresolved = xerrors.New("region could not be resolved from flag, environment, or aws config")

// Mode is the rollout mode, resolved exactly once from the flag
// combination before any I/O happens.
type Mode int

const (
	// ModeExplicitTaskDefinition bases the rollout on a task definition
	// given by name, family:revision, or full ARN.
	ModeExplicitTaskDefinition Mode = iota + 1
	// ModeUpdateFromService bases the rollout on the target service's
	// currently deployed task definition.
	ModeUpdateFromService
	// ModeCopyFromService is ModeUpdateFromService with images copied
	// from another service's current task definition.
	ModeCopyFromService
)

var (
	ErrConflictingArguments = xerrors.New("--task-definition conflicts with --update/--copy-images")
	ErrMissingTarget        = xerrors.New("nothing to deploy from: provide --update, --task-definition, or --copy-images")
)

// ResolveMode picks exactly one rollout mode or rejects the flag
// combination. Pure: no I/O, callable before any client is built.
func ResolveMode(e *Envars) (Mode, error) {
	switch {
	case e.TaskDefinition != "" && (e.Update || e.CopyImagesFrom != ""):
		return 0, ErrConflictingArguments
	case e.CopyImagesFrom != "":
		// copying always targets a live service's current definition,
		// so update is implied
		return ModeCopyFromService, nil
	case e.Update:
		return ModeUpdateFromService, nil
	case e.TaskDefinition != "":
		return ModeExplicitTaskDefinition, nil
	default:
		return 0, ErrMissingTarget
	}
}

func EnsureEnvars(dest *Envars) error {
	if dest.Region == "" {
		return xerrors.Errorf("--region [%s]: %w", RegionKey, ErrRegionUnresolved)
	}
	if dest.Cluster == "" {
		dest.Cluster = DefaultCluster
	}
	if dest.TimeoutSeconds <= 0 {
		dest.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if _, err := ResolveMode(dest); err != nil {
		return err
	}
	return nil
}

// ConvergeTimeout is the wall-clock deadline for the convergence poll.
func (e *Envars) ConvergeTimeout() time.Duration {
	if e.TimeoutSeconds > 0 {
		return time.Duration(e.TimeoutSeconds) * time.Second
	}
	return DefaultTimeoutSeconds * time.Second
}
