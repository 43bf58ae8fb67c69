package topic

import (
	"strings"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const ResourceType = "axonops_kafka_topic"

// MapTopics renders one block per topic. Only explicitly set config entries
// are kept.
func MapTopics(topics []Topic, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindTopic}
	names := naming.NewAllocator()

	for _, topic := range topics {
		block := tfhcl.NewResource(ResourceType, names.Next(topic.Name)).
			String("name", topic.Name).
			Int("partitions", topic.Partitions).
			Int("replication_factor", topic.ReplicationFactor).
			String("cluster_name", scope.ClusterName).
			OptionalStringMap("config", explicitConfig(topic.Configs), tfhcl.BareKeys).
			Build()
		t.Add(block, scope.ClusterName+"/"+topic.Name)
	}
	return t
}

func explicitConfig(entries []ConfigEntry) map[string]string {
	config := make(map[string]string)
	for _, e := range entries {
		if !e.IsExplicitlySet || e.Name == "" {
			continue
		}
		config[strings.ReplaceAll(e.Name, ".", "_")] = e.Value
	}
	return config
}
