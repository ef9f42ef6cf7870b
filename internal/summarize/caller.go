package summarize

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/tharindu-dev/noteflow/internal/logger"
)

// CallerOptions control the rate-limit tolerance of a RetryingCaller.
type CallerOptions struct {
	// MaxAttempts is the total number of tries before the last error is
	// surfaced.
	MaxAttempts int
	// PreDelayMin/Max bound the randomized delay taken before every
	// attempt to pre-empt rate limiting.
	PreDelayMin time.Duration
	PreDelayMax time.Duration
	// InitialBackoff is the first wait after a failure; waits double per
	// attempt up to MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultCallerOptions matches the production rate-limit policy: 2-4s
// pre-delay, 4s..10s exponential backoff, 10 attempts.
func DefaultCallerOptions() CallerOptions {
	return CallerOptions{
		MaxAttempts:    10,
		PreDelayMin:    2 * time.Second,
		PreDelayMax:    4 * time.Second,
		InitialBackoff: 4 * time.Second,
		MaxBackoff:     10 * time.Second,
	}
}

// RetryingCaller wraps an Endpoint with a pre-attempt delay and
// exponential-backoff retries. Every failure is treated as retryable
// except context cancellation, which aborts immediately.
type RetryingCaller struct {
	endpoint Endpoint
	logger   logger.Logger
	opts     CallerOptions
}

// NewCaller creates a RetryingCaller around the given endpoint.
func NewCaller(endpoint Endpoint, log logger.Logger, opts CallerOptions) *RetryingCaller {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	return &RetryingCaller{
		endpoint: endpoint,
		logger:   log,
		opts:     opts,
	}
}

func newBackOff(opts CallerOptions) *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = opts.InitialBackoff
	bo.MaxInterval = opts.MaxBackoff
	bo.Multiplier = 2
	// No jitter: waits grow monotonically until the ceiling.
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	return bo
}

// Call invokes the endpoint, retrying on any failure up to MaxAttempts.
// Exhausting all attempts returns the last error.
func (c *RetryingCaller) Call(ctx context.Context, prompt string) (string, error) {
	var result string
	attempt := 0

	operation := func() error {
		attempt++
		if err := c.preDelay(ctx); err != nil {
			return backoff.Permanent(err)
		}

		out, err := c.endpoint.Generate(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		result = out
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Info(ctx, "Call failed, waiting %s before retry (attempt %d/%d): %v",
			wait.Round(time.Millisecond), attempt, c.opts.MaxAttempts, err)
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(newBackOff(c.opts), uint64(c.opts.MaxAttempts-1)), ctx)

	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		return "", fmt.Errorf("call failed after %d attempt(s): %w", attempt, err)
	}
	return result, nil
}

// preDelay sleeps a uniform random duration in [PreDelayMin, PreDelayMax],
// interruptible by ctx.
func (c *RetryingCaller) preDelay(ctx context.Context) error {
	d := c.opts.PreDelayMin
	if span := c.opts.PreDelayMax - c.opts.PreDelayMin; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if d <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
