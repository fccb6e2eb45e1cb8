// ABOUTME: Retry backoff helper for outbound model-service calls
// ABOUTME: Shared by the embedding and generation paths of the OpenAI client
package util

import (
	"math/rand/v2"
	"time"
)

// backoff is capped so a stuck service never stalls a build for minutes
const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: exponential
// in the attempt number with up to +/-25% jitter.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	delay := baseDelay * time.Duration(1<<uint(attempt))
	if delay > maxBackoff || delay <= 0 {
		delay = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
