package manager

import (
	"errors"
	"fmt"
)

// ErrValidation marks request errors rejected before any I/O.
var ErrValidation = errors.New("validation failed")

// UpstreamError wraps a catalog push failure that happened after local state
// already committed. Callers should treat the operation as applied locally
// and retryable; the next full sync reconciles any drift.
type UpstreamError struct {
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream catalog failure: %v", e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}
