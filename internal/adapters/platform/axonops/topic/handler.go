package topic

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

func (h *Handler) Kind() domain.ResourceKind { return domain.KindTopic }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	routes := shared.NewRoutes(scope)
	skipped := 0

	var raw []map[string]any
	if !src.Decode(ctx, routes.Topics(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}

	topics := make([]Topic, 0, len(raw))
	for _, item := range raw {
		t := newTopic()
		if err := shared.DecodeRecord(item, &t); err != nil {
			logger.Warnf(ctx, "Skipping malformed topic record: %v", err)
			skipped++
			continue
		}
		if t.Name == "" {
			logger.Warnf(ctx, "Skipping topic record without a name")
			skipped++
			continue
		}
		if IsInternal(t.Name) {
			logger.Debugf(ctx, "Skipping internal topic %s", t.Name)
			continue
		}
		t.Configs = h.fetchConfigs(ctx, src, routes, t.Name, logger)
		topics = append(topics, t)
	}

	transcript := MapTopics(topics, scope)
	transcript.Skipped = skipped
	return transcript
}

// fetchConfigs returns nil when the configs endpoint fails; the topic is
// still emitted without overrides.
func (h *Handler) fetchConfigs(ctx context.Context, src ports.RecordSource, routes shared.Routes, name string, logger ports.Logger) []ConfigEntry {
	var raw map[string]any
	if !src.Decode(ctx, routes.TopicConfigs(name), &raw) {
		return nil
	}
	var resp configsResponse
	if err := shared.DecodeRecord(raw, &resp); err != nil {
		logger.Warnf(ctx, "Ignoring malformed config payload for topic %s: %v", name, err)
		return nil
	}
	if len(resp.TopicDescription) == 0 {
		return nil
	}
	return resp.TopicDescription[0].ConfigEntries
}
