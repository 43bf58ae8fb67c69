package alertrule

import (
	"strings"

	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const ResourceType = "axonops_metric_alert_rule"

// MapRules renders one block per rule. Import ids are
// cluster_type/cluster_name/rule_id.
func MapRules(rules []Rule, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindAlertRule}
	names := naming.NewAllocator()
	clusterType := scope.ClusterType
	if clusterType == "" {
		clusterType = "kafka"
	}

	for _, r := range rules {
		b := tfhcl.NewResource(ResourceType, names.Next(r.Alert)).
			String("cluster_name", scope.ClusterName).
			String("cluster_type", clusterType).
			String("name", r.Alert).
			String("metric", r.Expr).
			String("operator", r.Operator).
			Float("warning_value", r.WarningValue).
			Float("critical_value", r.CriticalValue).
			String("duration", r.For).
			OptionalString("description", r.Annotations.Description)
		for _, fa := range filterAttributes {
			b.OptionalStringList(fa.Attribute, r.filterValues(fa.Filter))
		}
		t.Add(b.Build(), strings.Join([]string{clusterType, scope.ClusterName, r.ID}, "/"))
	}
	return t
}
