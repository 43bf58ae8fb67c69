package acl

import (
	"strconv"
	"strings"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

const ResourceType = "axonops_kafka_acl"

// MapACLs renders the resource × rule cross product. ACL rules have no
// stable natural key, so blocks are named acl_N from counter onward; the
// last index used is returned for callers that map in several batches.
func MapACLs(resources []Resource, scope domain.ClusterScope, counter int) (domain.Transcript, int) {
	t := domain.Transcript{Kind: domain.KindACL}

	for _, res := range resources {
		for _, rule := range res.Rules {
			counter++
			block := tfhcl.NewResource(ResourceType, "acl_"+strconv.Itoa(counter)).
				String("cluster_name", scope.ClusterName).
				String("resource_type", res.ResourceType).
				String("resource_name", res.ResourceName).
				String("resource_pattern_type", res.PatternType).
				String("principal", rule.Principal).
				String("host", rule.Host).
				String("operation", rule.Operation).
				String("permission_type", rule.PermissionType).
				Build()
			t.Add(block, importID(scope.ClusterName, res, rule))
		}
	}
	return t, counter
}

func importID(cluster string, res Resource, rule Rule) string {
	return strings.Join([]string{
		cluster,
		res.ResourceType,
		res.ResourceName,
		res.PatternType,
		rule.Principal,
		rule.Host,
		rule.Operation,
		rule.PermissionType,
	}, "/")
}
