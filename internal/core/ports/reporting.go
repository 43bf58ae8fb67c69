package ports

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, summary domain.RunSummary) error
}
