package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic     = fmt.Errorf("worker panic")
	ErrTooManyRestarts = fmt.Errorf("worker exceeded its restart budget")

	ErrInvalidIdentifier     = fmt.Errorf("invalid node identifier")
	ErrPreconditionViolation = fmt.Errorf("required entity does not exist")
	ErrInputMismatch         = fmt.Errorf("token ids and records length mismatch")
	ErrParentCycle           = fmt.Errorf("parent chain loops back on itself")
	ErrOutOfOrder            = fmt.Errorf("event delivered out of block order")
	ErrUnknownEvent          = fmt.Errorf("no handler for event")
	ErrInvalidPayload        = fmt.Errorf("invalid event payload")
)

// Is lets callers match sentinels without importing the standard errors package alongside this one.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
