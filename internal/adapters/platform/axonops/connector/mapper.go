package connector

import (
	"strings"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const ResourceType = "axonops_kafka_connect_connector"

// MapConnectors renders one block per connector. The config map drops "name",
// which is its own attribute, and always quotes keys.
func MapConnectors(connectors []Connector, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindConnector}
	names := naming.NewAllocator()

	for _, c := range connectors {
		block := tfhcl.NewResource(ResourceType, names.Next(c.ConnectCluster+"_"+c.Name)).
			String("cluster_name", scope.ClusterName).
			String("connect_cluster_name", c.ConnectCluster).
			String("name", c.Name).
			StringMap("config", withoutName(c.Config), tfhcl.QuotedKeys).
			Build()
		t.Add(block, strings.Join([]string{scope.ClusterName, c.ConnectCluster, c.Name}, "/"))
	}
	return t
}

func withoutName(config map[string]string) map[string]string {
	out := make(map[string]string, len(config))
	for k, v := range config {
		if k == "name" {
			continue
		}
		out[k] = v
	}
	return out
}
