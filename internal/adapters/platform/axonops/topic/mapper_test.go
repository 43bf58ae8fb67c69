package topic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTopics_UniqueLocalNames(t *testing.T) {
	tr := MapTopics([]Topic{
		{Name: "orders.v1", Partitions: 1, ReplicationFactor: 1},
		{Name: "orders-v1", Partitions: 1, ReplicationFactor: 1},
	}, scope)

	require.NoError(t, tr.Validate())
	assert.Equal(t, "orders_v1", tr.Blocks[0].LocalName)
	assert.Equal(t, "orders_v1_2", tr.Blocks[1].LocalName)
	assert.Equal(t, "prod/orders-v1", tr.Commands[1].ImportID)
}

func TestMapTopics_Deterministic(t *testing.T) {
	topics := []Topic{{
		Name: "t", Partitions: 1, ReplicationFactor: 1,
		Configs: []ConfigEntry{
			{Name: "retention.ms", Value: "1", IsExplicitlySet: true},
			{Name: "cleanup.policy", Value: "compact", IsExplicitlySet: true},
			{Name: "min.insync.replicas", Value: "2", IsExplicitlySet: true},
		},
	}}

	first := MapTopics(topics, scope)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Blocks[0].Text, MapTopics(topics, scope).Blocks[0].Text)
	}
}

func TestExplicitConfig(t *testing.T) {
	got := explicitConfig([]ConfigEntry{
		{Name: "retention.ms", Value: "10", IsExplicitlySet: true},
		{Name: "segment.ms", Value: "20"},
		{Name: "", Value: "x", IsExplicitlySet: true},
	})
	assert.Equal(t, map[string]string{"retention_ms": "10"}, got)
}
