package healthcheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/shared"
)

func TestDecodeHTTPCheck_KeepsDefaults(t *testing.T) {
	c := newHTTPCheck()
	err := shared.DecodeRecord(map[string]any{
		"name":           "api",
		"url":            "http://localhost/",
		"method":         nil,
		"expectedStatus": "201",
	}, &c)
	require.NoError(t, err)

	want := HTTPCheck{
		Name:           "api",
		URL:            "http://localhost/",
		Method:         "GET",
		ExpectedStatus: 201,
		Interval:       "1m",
		Timeout:        "1m",
	}
	if diff := cmp.Diff(want, c, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("decoded check mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTCPCheck(t *testing.T) {
	c := newTCPCheck()
	err := shared.DecodeRecord(map[string]any{
		"name":               "zk",
		"tcp":                "localhost:2181",
		"timeout":            "30s",
		"supportedAgentType": []any{"kafka", "zookeeper"},
	}, &c)
	require.NoError(t, err)

	want := TCPCheck{
		Name:                "zk",
		TCP:                 "localhost:2181",
		Interval:            "1m",
		Timeout:             "30s",
		SupportedAgentTypes: []string{"kafka", "zookeeper"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("decoded check mismatch (-want +got):\n%s", diff)
	}
}

func TestAgentTypes(t *testing.T) {
	require.Equal(t, []string{"all"}, agentTypes(nil))
	require.Equal(t, []string{"kafka"}, agentTypes([]string{"kafka"}))
}
