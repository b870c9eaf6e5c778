package protocol

import (
	"errors"
	"fmt"
)

// UnexpectedResponseError reports a device response that does not match
// the shape expected for a command. The raw response is carried verbatim
// so callers can surface it when diagnosing device or protocol drift.
type UnexpectedResponseError struct {
	// Operation is the command that failed
	Operation string

	// Response is the raw line the device answered with
	Response string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%s failed: unexpected response %q", e.Operation, e.Response)
}

// IsUnexpectedResponse returns true if the error is an UnexpectedResponseError.
func IsUnexpectedResponse(err error) bool {
	var target *UnexpectedResponseError
	return errors.As(err, &target)
}
