package healthcheck

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

func (h *Handler) Kind() domain.ResourceKind { return domain.KindHealthcheck }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	var raw map[string]any
	if !src.Decode(ctx, shared.NewRoutes(scope).Healthchecks(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}

	var resp checksResponse
	if err := shared.DecodeRecord(raw, &resp); err != nil {
		logger.Warnf(ctx, "Ignoring malformed healthcheck payload: %v", err)
		return domain.Transcript{Kind: h.Kind(), Skipped: 1}
	}

	var checks Checks
	skipped := 0
	keep := func(kind string, item map[string]any, out any, name func() string) bool {
		if err := shared.DecodeRecord(item, out); err != nil {
			logger.Warnf(ctx, "Skipping malformed %s healthcheck: %v", kind, err)
			skipped++
			return false
		}
		if name() == "" {
			logger.Warnf(ctx, "Skipping %s healthcheck without a name", kind)
			skipped++
			return false
		}
		return true
	}

	for _, item := range resp.TCPChecks {
		c := newTCPCheck()
		if keep("tcp", item, &c, func() string { return c.Name }) {
			checks.TCP = append(checks.TCP, c)
		}
	}
	for _, item := range resp.HTTPChecks {
		c := newHTTPCheck()
		if keep("http", item, &c, func() string { return c.Name }) {
			checks.HTTP = append(checks.HTTP, c)
		}
	}
	for _, item := range resp.ShellChecks {
		c := newShellCheck()
		if keep("shell", item, &c, func() string { return c.Name }) {
			checks.Shell = append(checks.Shell, c)
		}
	}

	transcript := MapHealthchecks(checks, scope)
	transcript.Skipped = skipped
	return transcript
}
