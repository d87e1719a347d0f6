package consumer

import (
	"testing"
	"time"
)

// SetRetryDelay shortens the retry back-off for the duration of a test.
func SetRetryDelay(t testing.TB, d time.Duration) {
	prevBase, prevMax := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = d, d
	t.Cleanup(func() {
		retryBaseDelay, retryMaxDelay = prevBase, prevMax
	})
}
