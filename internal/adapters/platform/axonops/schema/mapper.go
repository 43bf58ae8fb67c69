package schema

import (
	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const ResourceType = "axonops_schema"

func MapSchemas(schemas []Schema, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindSchema}
	names := naming.NewAllocator()

	for _, s := range schemas {
		block := tfhcl.NewResource(ResourceType, names.Next(s.Subject)).
			String("cluster_name", scope.ClusterName).
			String("subject", s.Subject).
			String("schema_type", s.SchemaType).
			String("schema", s.Schema).
			Build()
		t.Add(block, scope.ClusterName+"/"+s.Subject)
	}
	return t
}
