package connector

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

func (h *Handler) Kind() domain.ResourceKind { return domain.KindConnector }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	routes := shared.NewRoutes(scope)

	var clusters []map[string]any
	if !src.Decode(ctx, routes.ConnectClusters(), &clusters) {
		return domain.Transcript{Kind: h.Kind()}
	}

	skipped := 0
	var connectors []Connector
	for _, item := range clusters {
		var cc connectCluster
		if err := shared.DecodeRecord(item, &cc); err != nil || cc.ClusterName == "" {
			logger.Warnf(ctx, "Skipping connect cluster record without a cluster name")
			skipped++
			continue
		}

		var raw map[string]any
		if !src.Decode(ctx, routes.Connectors(cc.ClusterName), &raw) {
			continue
		}
		var resp connectorsResponse
		if err := shared.DecodeRecord(raw, &resp); err != nil {
			logger.Warnf(ctx, "Ignoring malformed connector payload for connect cluster %s: %v", cc.ClusterName, err)
			skipped++
			continue
		}

		for _, name := range convert.SortedKeys(resp.Connectors) {
			if name == "" {
				skipped++
				continue
			}
			config, err := configStrings(resp.Connectors[name].Info.Config)
			if err != nil {
				logger.Warnf(ctx, "Skipping connector %s/%s with unencodable config: %v", cc.ClusterName, name, err)
				skipped++
				continue
			}
			connectors = append(connectors, Connector{ConnectCluster: cc.ClusterName, Name: name, Config: config})
		}
	}

	transcript := MapConnectors(connectors, scope)
	transcript.Skipped = skipped
	return transcript
}
