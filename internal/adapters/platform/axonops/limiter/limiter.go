package limiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

const (
	DefaultRPS = 20
	MinRPS     = 1
	MaxRPS     = 100
)

// Limiter is a token bucket shared by every request of one client.
type Limiter struct {
	limiter *rate.Limiter
	rps     int
}

// New builds a limiter. Zero selects the default; values outside
// [MinRPS, MaxRPS] fall back to it with a warning.
func New(rps int, logger ports.Logger) *Limiter {
	value := DefaultRPS
	if rps >= MinRPS && rps <= MaxRPS {
		value = rps
	} else if rps != 0 {
		logger.Warnf(context.Background(), "Invalid AxonOps API RPS configured (%d), using default %d RPS. Valid range: %d-%d.", rps, DefaultRPS, MinRPS, MaxRPS)
	}
	logger.Debugf(context.Background(), "Initialized AxonOps API rate limiter: %d RPS", value)
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(value), value), rps: value}
}

func (l *Limiter) RPS() int {
	return l.rps
}

func (l *Limiter) Wait(ctx context.Context, logger ports.Logger) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			logger.Warnf(ctx, "Error waiting for AxonOps API rate limiter: %v", err)
		}
		return err
	}
	return nil
}
