package driver

import "time"

// Retry executes op and, if it fails, pauses for cooldown, runs
// reconnect, then executes op exactly one more time. There is no
// unbounded retry loop: a second failure propagates to the caller
// unmasked, and a reconnect failure (typically an unplugged device)
// is surfaced immediately instead of a second attempt.
func Retry[T any](cooldown time.Duration, op func() (T, error), reconnect func() error) (T, error) {
	result, err := op()
	if err == nil {
		return result, nil
	}

	time.Sleep(cooldown)
	if rerr := reconnect(); rerr != nil {
		var zero T
		return zero, rerr
	}

	return op()
}
