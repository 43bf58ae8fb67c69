package schema

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/shared"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/pkg/convert"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Kind() domain.ResourceKind { return domain.KindSchema }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	routes := shared.NewRoutes(scope)

	var raw any
	if !src.Decode(ctx, routes.Subjects(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}
	subjects, err := subjectList(raw)
	if err != nil {
		logger.Warnf(ctx, "Ignoring malformed subject list: %v", err)
		return domain.Transcript{Kind: h.Kind(), Skipped: 1}
	}

	skipped := 0
	schemas := make([]Schema, 0, len(subjects))
	for _, subject := range subjects {
		if subject == "" {
			skipped++
			continue
		}
		var latest map[string]any
		if !src.Decode(ctx, routes.LatestSchema(subject), &latest) {
			skipped++
			continue
		}
		s := newSchema(subject)
		if err := shared.DecodeRecord(latest, &s); err != nil {
			logger.Warnf(ctx, "Skipping malformed schema for subject %s: %v", subject, err)
			skipped++
			continue
		}
		if s.IsSoftDeleted {
			logger.Infof(ctx, "Skipping soft-deleted subject %s", subject)
			skipped++
			continue
		}
		schemas = append(schemas, s)
	}

	transcript := MapSchemas(schemas, scope)
	transcript.Skipped = skipped
	return transcript
}

// subjectList accepts both {"subjects": [...]} and a bare list.
func subjectList(raw any) ([]string, error) {
	if obj, ok := raw.(map[string]any); ok {
		raw = obj["subjects"]
	}
	return convert.ToSliceOfString(raw)
}
