package shared

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

//go:generate mockery --name RateLimiter --output ./mocks --outpkg mocks --case underscore
//go:generate mockery --name ErrorHandler --output ./mocks --outpkg mocks --case underscore

// RateLimiter paces calls to the AxonOps API.
type RateLimiter interface {
	Wait(ctx context.Context, logger ports.Logger) error
}

// ErrorHandler turns a failed request into an application error. status is
// zero when no response was received.
type ErrorHandler interface {
	Handle(ctx context.Context, url string, status int, err error) error
}
