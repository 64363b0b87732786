package rollout

import "golang.org/x/xerrors"

var (
	ErrSourceServiceNotFound = xerrors.New("source service not found")
	ErrNoImagesFound         = xerrors.New("no images found in source task definition")
	ErrTaskArnUnresolved     = xerrors.New("base task definition arn could not be resolved")
	ErrConvergenceTimedOut   = xerrors.New("new task definition did not converge before deadline")
)
