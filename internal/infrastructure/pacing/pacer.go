package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"NewsBridge/internal/ports"
)

// FixedDelay enforces a minimum interval between fetches toward scraped
// sites. Courtesy pacing, not a correctness requirement.
type FixedDelay struct {
	limiter *rate.Limiter
}

var _ ports.Pacer = (*FixedDelay)(nil)

// NewFixedDelay builds a pacer allowing one request per interval. A
// non-positive interval disables pacing.
func NewFixedDelay(interval time.Duration) *FixedDelay {
	if interval <= 0 {
		return &FixedDelay{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &FixedDelay{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next request is allowed or the context is done.
func (f *FixedDelay) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}
