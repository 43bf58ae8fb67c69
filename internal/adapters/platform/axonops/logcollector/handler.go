package logcollector

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/shared"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Kind() domain.ResourceKind { return domain.KindLogCollector }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	var raw []map[string]any
	if !src.Decode(ctx, shared.NewRoutes(scope).LogCollectors(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}

	skipped := 0
	collectors := make([]LogCollector, 0, len(raw))
	for _, item := range raw {
		lc := newLogCollector()
		if err := shared.DecodeRecord(item, &lc); err != nil {
			logger.Warnf(ctx, "Skipping malformed log collector record: %v", err)
			skipped++
			continue
		}
		if lc.Name == "" {
			logger.Warnf(ctx, "Skipping log collector record without a name")
			skipped++
			continue
		}
		collectors = append(collectors, lc)
	}

	transcript := MapLogCollectors(collectors, scope)
	transcript.Skipped = skipped
	return transcript
}
