package registry

import "errors"

// Sentinel errors for Registry's open/frozen state machine, mirroring the
// keyword package's sentinels. Registry returns them unwrapped; unlike the
// keyword package it has no OpError type.
var (
	// ErrAlreadyFrozen is returned by Enter once the registry has served
	// its first Query.
	ErrAlreadyFrozen = errors.New("registry: already frozen")

	// ErrInvalidPattern is returned by Enter for an empty regex string.
	ErrInvalidPattern = errors.New("registry: invalid pattern")
)
