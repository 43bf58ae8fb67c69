package json

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/log"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter(Config{}, log.Discard(), WithWriter(&buf))
	require.NoError(t, err)

	summary := domain.RunSummary{
		RunID:      "r1",
		Host:       "h:8080",
		Scope:      domain.ClusterScope{OrgID: "acme", ClusterName: "prod"},
		OutputDir:  "./imported",
		ScriptPath: "imported/import_commands.sh",
		Kinds: []domain.KindResult{
			{Kind: domain.KindTopic, Resources: 3, Fetch: domain.FetchStats{Requests: 4}, File: "imported/topics.tf"},
			{Kind: domain.KindACL, Fetch: domain.FetchStats{Requests: 1, Failures: 1}},
			{Kind: domain.KindSchema, Skipped: 2, Error: "schemas.tf did not verify"},
		},
		Files:    []domain.OutputFile{{Name: "topics.tf", Path: "imported/topics.tf", Size: 120}},
		Commands: 3,
	}
	require.NoError(t, r.Report(context.Background(), summary))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "prod", got["cluster_name"])
	assert.Equal(t, map[string]any{
		"total_resources": float64(3),
		"import_commands": float64(3),
		"failed_requests": float64(1),
		"failed_kinds":    float64(1),
	}, got["summary"])
	kinds := got["kinds"].([]any)
	require.Len(t, kinds, 3)
	assert.Equal(t, "acls", kinds[1].(map[string]any)["kind"])
	assert.NotContains(t, kinds[1].(map[string]any), "file")
	assert.NotContains(t, kinds[1].(map[string]any), "error")
	assert.Equal(t, "schemas.tf did not verify", kinds[2].(map[string]any)["error"])
}

func TestReport_Cancelled(t *testing.T) {
	r, err := NewReporter(Config{}, log.Discard(), WithWriter(&bytes.Buffer{}))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Report(ctx, domain.RunSummary{}), context.Canceled)
}
