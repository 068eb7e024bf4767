package worker

import "errors"

// Identity directory errors
var (
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrPINExists          = errors.New("pin already assigned to another worker")
	ErrCapabilityRequired = errors.New("capability required for this operation")
)
