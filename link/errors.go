package link

import (
	"errors"
	"fmt"
	"time"
)

// TimeoutError indicates that no response arrived within the configured
// window. Timeouts are the recoverable failure class: a caller-level
// retry with a fresh link is expected to clear them.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("serial %s timed out after %s", e.Op, e.Timeout)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

// OpenError indicates the serial device path could not be opened at all,
// typically because the device is unplugged. Reopening will fail the
// same way, so this class is not recoverable by retry.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open serial device %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
