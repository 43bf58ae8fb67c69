package connector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/log"
	"github.com/olusolaa/axonops-importer/mocks"
)

var scope = domain.ClusterScope{OrgID: "acme", ClusterType: "kafka", ClusterName: "prod"}

func TestExport_ConfigDropsName(t *testing.T) {
	src := mocks.NewStaticSource(map[string]string{
		"/api/v1/acme/kafka/prod/connect/clusters/": `[{"clusterName":"cc1"},{"clusterName":""}]`,
		"/api/v1/acme/kafka/prod/connect/cc1/connectors": `{"connectors":{
			"jdbc-sink":{"info":{"config":{
				"name":"jdbc-sink",
				"connector.class":"io.confluent.connect.jdbc.JdbcSinkConnector",
				"tasks.max":2
			}}}
		}}`,
	})

	tr := NewHandler().Export(context.Background(), src, scope, log.Discard())

	require.NoError(t, tr.Validate())
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, 1, tr.Skipped)
	assert.Equal(t, "axonops_kafka_connect_connector.cc1_jdbc_sink", tr.Commands[0].Address)
	assert.Equal(t, "prod/cc1/jdbc-sink", tr.Commands[0].ImportID)

	text := string(tr.Blocks[0].Text)
	assert.Contains(t, text, `"connector.class"`)
	assert.Contains(t, text, `"tasks.max"`)

	parsed, err := tfhcl.ParseResources("connectors.tf", tr.Blocks[0].Text)
	require.NoError(t, err)
	attrs := parsed[0].Attrs
	assert.Equal(t, "jdbc-sink", attrs["name"])
	assert.Equal(t, "cc1", attrs["connect_cluster_name"])
	assert.Equal(t, map[string]any{
		"connector.class": "io.confluent.connect.jdbc.JdbcSinkConnector",
		"tasks.max":       "2",
	}, attrs["config"])
}

func TestExport_SortedAcrossConnectors(t *testing.T) {
	src := mocks.NewStaticSource(map[string]string{
		"/api/v1/acme/kafka/prod/connect/clusters/":      `[{"clusterName":"cc1"},{"clusterName":"cc2"}]`,
		"/api/v1/acme/kafka/prod/connect/cc1/connectors": `{"connectors":{"zeta":{"info":{"config":{}}},"alpha":{"info":{"config":{"k":"v"}}}}}`,
	})

	tr := NewHandler().Export(context.Background(), src, scope, log.Discard())

	require.Equal(t, 2, tr.Len())
	assert.Equal(t, "cc1_alpha", tr.Blocks[0].LocalName)
	assert.Equal(t, "cc1_zeta", tr.Blocks[1].LocalName)
	assert.Equal(t, 2, src.Stats().Requests-src.Stats().Failures, "cc2 connectors endpoint is absent")

	parsed, err := tfhcl.ParseResources("connectors.tf", tr.Blocks[1].Text)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, parsed[0].Attrs["config"])
}

func TestExport_NestedConfigEncodedAsJSON(t *testing.T) {
	src := mocks.NewStaticSource(map[string]string{
		"/api/v1/acme/kafka/prod/connect/clusters/": `[{"clusterName":"cc1"}]`,
		"/api/v1/acme/kafka/prod/connect/cc1/connectors": `{"connectors":{"odd":{"info":{"config":{
			"nested":{"b":"x","a":1},
			"topics":["orders","payments"],
			"tasks.max":"1"
		}}}}}`,
	})

	tr := NewHandler().Export(context.Background(), src, scope, log.Discard())

	require.NoError(t, tr.Validate())
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, 0, tr.Skipped)

	parsed, err := tfhcl.ParseResources("connectors.tf", tr.Blocks[0].Text)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"nested":    `{"a":1,"b":"x"}`,
		"topics":    `["orders","payments"]`,
		"tasks.max": "1",
	}, parsed[0].Attrs["config"])
}

func TestConfigStrings(t *testing.T) {
	got, err := configStrings(map[string]any{
		"flag":  true,
		"rate":  1.5,
		"empty": nil,
		"list":  []any{},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flag": "true", "rate": "1.5", "empty": "", "list": "[]"}, got)
}

func TestMapConnectors_EscapesValues(t *testing.T) {
	tr := MapConnectors([]Connector{{
		ConnectCluster: "cc",
		Name:           "c",
		Config:         map[string]string{"name": "c", "transforms.x.regex": `^(.*)\.(.*)$`, "query": `SELECT "id" FROM t`},
	}}, scope)

	parsed, err := tfhcl.ParseResources("connectors.tf", tr.Blocks[0].Text)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"transforms.x.regex": `^(.*)\.(.*)$`,
		"query":              `SELECT "id" FROM t`,
	}, parsed[0].Attrs["config"])
}
