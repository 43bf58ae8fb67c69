package logcollector

import (
	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const ResourceType = "axonops_logcollector"

// MapLogCollectors omits the regexes and alert threshold when they are empty.
func MapLogCollectors(collectors []LogCollector, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindLogCollector}
	names := naming.NewAllocator()

	for _, lc := range collectors {
		block := tfhcl.NewResource(ResourceType, names.Next(lc.Name)).
			String("cluster_name", scope.ClusterName).
			String("name", lc.Name).
			String("filename", lc.Filename).
			String("date_format", lc.DateFormat).
			StringList("supported_agent_types", lc.agentTypes()).
			OptionalString("info_regex", lc.InfoRegex).
			OptionalString("warning_regex", lc.WarningRegex).
			OptionalString("error_regex", lc.ErrorRegex).
			OptionalString("debug_regex", lc.DebugRegex).
			OptionalInt("error_alert_threshold", lc.ErrorAlertThreshold).
			Build()
		t.Add(block, scope.ClusterName+"/"+lc.Name)
	}
	return t
}
