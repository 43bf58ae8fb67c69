package alertrule

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

func (h *Handler) Kind() domain.ResourceKind { return domain.KindAlertRule }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	var raw map[string]any
	if !src.Decode(ctx, shared.NewRoutes(scope).AlertRules(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}

	var resp rulesResponse
	if err := shared.DecodeRecord(raw, &resp); err != nil {
		logger.Warnf(ctx, "Ignoring malformed alert rule payload: %v", err)
		return domain.Transcript{Kind: h.Kind(), Skipped: 1}
	}

	skipped := 0
	rules := make([]Rule, 0, len(resp.MetricRules))
	for _, item := range resp.MetricRules {
		var r Rule
		if err := shared.DecodeRecord(item, &r); err != nil {
			logger.Warnf(ctx, "Skipping malformed alert rule: %v", err)
			skipped++
			continue
		}
		if r.ID == "" || r.Alert == "" {
			logger.Warnf(ctx, "Skipping alert rule without id or name")
			skipped++
			continue
		}
		rules = append(rules, r)
	}

	transcript := MapRules(rules, scope)
	transcript.Skipped = skipped
	return transcript
}
