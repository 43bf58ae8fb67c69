package tfhcl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceBuilder_RoundTrip(t *testing.T) {
	block := NewResource("axonops_kafka_topic", "orders_v1").
		String("name", "orders.v1").
		Int("partitions", 3).
		Int("replication_factor", 2).
		String("cluster_name", "prod").
		StringMap("config", map[string]string{"retention_ms": "604800000", "cleanup_policy": "compact"}, BareKeys).
		Build()

	assert.Equal(t, "axonops_kafka_topic.orders_v1", block.Address())
	text := string(block.Text)
	assert.True(t, strings.HasPrefix(text, `resource "axonops_kafka_topic" "orders_v1" {`))
	assert.Contains(t, text, "retention_ms")
	assert.Less(t, strings.Index(text, "cleanup_policy"), strings.Index(text, "retention_ms"), "keys are sorted")

	parsed, err := ParseResources("topics.tf", block.Text)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "orders.v1", parsed[0].Attrs["name"])
	assert.Equal(t, float64(3), parsed[0].Attrs["partitions"])
	assert.Equal(t, map[string]any{"retention_ms": "604800000", "cleanup_policy": "compact"}, parsed[0].Attrs["config"])
}

func TestResourceBuilder_EscapedValuesSurviveParsing(t *testing.T) {
	values := []string{
		`{"type":"record","name":"Order"}`,
		`C:\temp\"quoted"`,
		"line1\nline2\ttab",
		"${not_a_template}",
		"%{ if true }",
		"$${escaped}",
		"\x01\x1b[31mred\x7f",
		"line\u2028separator",
		"",
	}
	for _, v := range values {
		block := NewResource("axonops_schema", "s").String("schema", v).Build()
		parsed, err := ParseResources("schemas.tf", block.Text)
		require.NoError(t, err, "value %q", v)
		require.Len(t, parsed, 1)
		assert.Equal(t, v, parsed[0].Attrs["schema"])
	}
}

func TestResourceBuilder_Optionals(t *testing.T) {
	block := NewResource("axonops_logcollector", "app").
		String("name", "app").
		OptionalString("info_regex", "").
		OptionalString("error_regex", "ERROR").
		OptionalInt("error_alert_threshold", 0).
		OptionalStringList("supported_agent_types", nil).
		OptionalStringMap("headers", map[string]string{}, QuotedKeys).
		Build()

	parsed, err := ParseResources("logcollectors.tf", block.Text)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	attrs := parsed[0].Attrs
	assert.Len(t, attrs, 2)
	assert.Equal(t, "ERROR", attrs["error_regex"])
	assert.NotContains(t, attrs, "info_regex")
	assert.NotContains(t, attrs, "error_alert_threshold")
}

func TestResourceBuilder_QuotedKeysAndLists(t *testing.T) {
	block := NewResource("axonops_healthcheck_http", "http_api").
		StringList("supported_agent_types", []string{"all"}).
		Bool("readonly", false).
		StringMap("headers", map[string]string{"X-Trace": "1", "Accept": `application/"json"`}, QuotedKeys).
		Build()

	text := string(block.Text)
	assert.Contains(t, text, `"X-Trace"`)
	assert.Contains(t, text, `"Accept"`)

	parsed, err := ParseResources("healthchecks.tf", block.Text)
	require.NoError(t, err)
	attrs := parsed[0].Attrs
	assert.Equal(t, []any{"all"}, attrs["supported_agent_types"])
	assert.Equal(t, false, attrs["readonly"])
	assert.Equal(t, map[string]any{"X-Trace": "1", "Accept": `application/"json"`}, attrs["headers"])
}

func TestKeyTokens_InvalidIdentifierIsQuoted(t *testing.T) {
	block := NewResource("axonops_kafka_topic", "t").
		StringMap("config", map[string]string{"1bad": "x"}, BareKeys).
		Build()
	assert.Contains(t, string(block.Text), `"1bad"`)
	_, err := ParseResources("topics.tf", block.Text)
	require.NoError(t, err)
}

func TestResourceBuilder_InvalidUTF8IsReplaced(t *testing.T) {
	block := NewResource("axonops_kafka_topic", "bad_name").
		String("name", "bad\xffname").
		StringMap("config", map[string]string{"k\xfe": "v\xff"}, BareKeys).
		Build()

	parsed, err := ParseResources("topics.tf", block.Text)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "bad\uFFFDname", parsed[0].Attrs["name"])
	assert.Equal(t, map[string]any{"k\uFFFD": "v\uFFFD"}, parsed[0].Attrs["config"])
}
