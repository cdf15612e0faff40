package feed

import (
	"errors"
	"fmt"
)

const (
	OpFetch  = "fetch"
	OpInsert = "insert"
	OpUpdate = "update"
)

// ErrSuperseded is returned by a fetch whose result was discarded because a newer
// fetch was started before it resolved.
var ErrSuperseded = errors.New("fetch superseded by a newer filter")

// RemoteFailure is any store read or write that was rejected or did not complete.
type RemoteFailure struct {
	Op     string
	FactID string
	Field  string
	Err    error
}

func (e *RemoteFailure) Error() string {
	switch {
	case len(e.Field) > 0:
		return fmt.Sprintf("error on %s of %s.%s, %s", e.Op, e.FactID, e.Field, e.Err)
	case len(e.FactID) > 0:
		return fmt.Sprintf("error on %s of %s, %s", e.Op, e.FactID, e.Err)
	default:
		return fmt.Sprintf("error on %s, %s", e.Op, e.Err)
	}
}

func (e *RemoteFailure) Unwrap() error {
	return e.Err
}

// ValidationFailure is a local precondition that was not met. No remote call is made.
type ValidationFailure struct {
	Field  string
	Reason string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("invalid %s, %s", e.Field, e.Reason)
}

func IsRemoteFailure(err error) bool {
	var rf *RemoteFailure
	return errors.As(err, &rf)
}

func IsValidationFailure(err error) bool {
	var vf *ValidationFailure
	return errors.As(err, &vf)
}
