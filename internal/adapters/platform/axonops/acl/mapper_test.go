package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

var scope = domain.ClusterScope{OrgID: "acme", ClusterType: "kafka", ClusterName: "prod"}

func TestMapACLs_CounterIsThreaded(t *testing.T) {
	resources := []Resource{
		{ResourceType: "TOPIC", ResourceName: "orders", PatternType: "LITERAL", Rules: []Rule{
			{Principal: "User:alice", Host: "*", Operation: "READ", PermissionType: "ALLOW"},
			{Principal: "User:alice", Host: "*", Operation: "WRITE", PermissionType: "ALLOW"},
		}},
		{ResourceType: "GROUP", ResourceName: "billing", PatternType: "PREFIXED", Rules: []Rule{
			{Principal: "User:bob", Host: "10.0.0.1", Operation: "READ", PermissionType: "DENY"},
		}},
	}

	tr, last := MapACLs(resources, scope, 0)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 3, last)
	assert.Equal(t, "acl_1", tr.Blocks[0].LocalName)
	assert.Equal(t, "acl_3", tr.Blocks[2].LocalName)
	assert.Equal(t, "prod/GROUP/billing/PREFIXED/User:bob/10.0.0.1/READ/DENY", tr.Commands[2].ImportID)

	more, last := MapACLs(resources[:1], scope, last)
	assert.Equal(t, 5, last)
	assert.Equal(t, "acl_4", more.Blocks[0].LocalName)
}

func TestMapACLs_ResourceWithoutRules(t *testing.T) {
	tr, last := MapACLs([]Resource{{ResourceType: "TOPIC", ResourceName: "x"}}, scope, 7)
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 7, last)
}
