package ports

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

// Fetcher performs a single authenticated GET. It never panics and never
// blocks past its timeout; every failure comes back inside the result.
type Fetcher interface {
	Get(ctx context.Context, path string) domain.FetchResult
}

// RecordSource is what exporters read through. Decode reports false when the
// record is absent for any reason; the reason has already been logged.
type RecordSource interface {
	Decode(ctx context.Context, path string, out any) bool
}

// TrackedSource is a RecordSource that remembers how its fetches went.
type TrackedSource interface {
	RecordSource
	Stats() domain.FetchStats
}

type PlatformClient interface {
	Type() string
	NewSource(logger Logger) TrackedSource
}

//go:generate mockery --name ResourceExporter --output ./mocks --outpkg mocks --case underscore
type ResourceExporter interface {
	Kind() domain.ResourceKind
	Export(ctx context.Context, src RecordSource, scope domain.ClusterScope, logger Logger) domain.Transcript
}
