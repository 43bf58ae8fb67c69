package acl

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

func (h *Handler) Kind() domain.ResourceKind { return domain.KindACL }

func (h *Handler) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	var raw map[string]any
	if !src.Decode(ctx, shared.NewRoutes(scope).ACLs(), &raw) {
		return domain.Transcript{Kind: h.Kind()}
	}

	var resp aclsResponse
	if err := shared.DecodeRecord(raw, &resp); err != nil {
		logger.Warnf(ctx, "Ignoring malformed ACL payload: %v", err)
		return domain.Transcript{Kind: h.Kind(), Skipped: 1}
	}

	skipped := 0
	resources := make([]Resource, 0, len(resp.ACLResources))
	for _, item := range resp.ACLResources {
		res := newResource()
		if err := shared.DecodeRecord(item, &res); err != nil {
			logger.Warnf(ctx, "Skipping malformed ACL resource: %v", err)
			skipped++
			continue
		}
		for _, ruleItem := range res.ACLs {
			rule := newRule()
			if err := shared.DecodeRecord(ruleItem, &rule); err != nil {
				logger.Warnf(ctx, "Skipping malformed ACL rule on %s %s: %v", res.ResourceType, res.ResourceName, err)
				skipped++
				continue
			}
			res.Rules = append(res.Rules, rule)
		}
		resources = append(resources, res.Resource)
	}

	transcript, _ := MapACLs(resources, scope, 0)
	transcript.Skipped = skipped
	return transcript
}
