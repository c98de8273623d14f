package purge

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const purgeRetryMaxElapsed = 30 * time.Second

func newRetryBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = purgeRetryMaxElapsed
	return bo
}

// isRetryableSQLError reports whether err looks like a transient
// connection problem worth retrying, as opposed to a real SQL error
// (constraint violation, syntax error) that should propagate
// immediately per spec.md §7.
func isRetryableSQLError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"driver: bad connection",
		"invalid connection",
		"broken pipe",
		"connection reset",
		"connection refused",
		"lost connection",
		"gone away",
		"i/o timeout",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

// withRetry runs op, retrying transient SQL errors with exponential
// backoff and propagating everything else immediately as
// backoff.Permanent, mirroring the retry shape used elsewhere in this
// codebase for transient server-mode connection errors.
func withRetry(ctx context.Context, op func() error) error {
	bo := newRetryBackoff()
	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isRetryableSQLError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx))
}
