package retry

import (
	"context"
	"errors"
	"time"

	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
)

var throttleCodes = map[string]bool{
	"Throttling":               true,
	"ThrottlingException":      true,
	"RequestLimitExceeded":     true,
	"TooManyRequestsException": true,
}

// Policy retries provider calls rejected for throttling with exponential
// backoff. Any other failure is returned immediately.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	Sleep      func(ctx context.Context, d time.Duration) error
}

func Default() Policy {
	return Policy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
		Sleep:      Sleep,
	}
}

// IsThrottle reports whether err is a provider throttling rejection.
func IsThrottle(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return throttleCodes[apiErr.ErrorCode()]
	}
	return false
}

// Do calls op up to MaxRetries+1 times, sleeping BaseDelay*2^attempt
// between throttled attempts. A negative MaxRetries is treated as zero.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}

	var err error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if err = op(ctx); err == nil || !IsThrottle(err) {
			return err
		}

		if attempt == p.MaxRetries {
			log.Error().Err(err).Int("retries", p.MaxRetries).Msg("retries exhausted on throttling")
			break
		}

		delay := p.BaseDelay << attempt
		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("retries", p.MaxRetries).
			Dur("delay", delay).
			Msg("throttled, retrying")

		if serr := sleep(ctx, delay); serr != nil {
			return errors.Join(err, serr)
		}
	}

	return err
}

// Sleep blocks for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
