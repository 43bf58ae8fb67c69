package healthcheck

import (
	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/pkg/naming"
)

const (
	TCPResourceType   = "axonops_healthcheck_tcp"
	HTTPResourceType  = "axonops_healthcheck_http"
	ShellResourceType = "axonops_healthcheck_shell"
)

// MapHealthchecks renders tcp, then http, then shell checks into one
// transcript. Local names carry the check type as a prefix.
func MapHealthchecks(checks Checks, scope domain.ClusterScope) domain.Transcript {
	t := domain.Transcript{Kind: domain.KindHealthcheck}
	names := naming.NewAllocator()
	importID := func(name string) string { return scope.ClusterName + "/" + name }

	for _, c := range checks.TCP {
		block := tfhcl.NewResource(TCPResourceType, names.Next("tcp_"+c.Name)).
			String("cluster_name", scope.ClusterName).
			String("name", c.Name).
			String("tcp", c.TCP).
			String("interval", c.Interval).
			String("timeout", c.Timeout).
			Bool("readonly", c.Readonly).
			StringList("supported_agent_types", agentTypes(c.SupportedAgentTypes)).
			Build()
		t.Add(block, importID(c.Name))
	}

	for _, c := range checks.HTTP {
		block := tfhcl.NewResource(HTTPResourceType, names.Next("http_"+c.Name)).
			String("cluster_name", scope.ClusterName).
			String("name", c.Name).
			String("url", c.URL).
			String("method", c.Method).
			Int("expected_status", c.ExpectedStatus).
			String("interval", c.Interval).
			String("timeout", c.Timeout).
			Bool("readonly", c.Readonly).
			StringList("supported_agent_types", agentTypes(c.SupportedAgentTypes)).
			OptionalString("body", c.Body).
			OptionalStringMap("headers", c.Headers, tfhcl.QuotedKeys).
			Build()
		t.Add(block, importID(c.Name))
	}

	for _, c := range checks.Shell {
		block := tfhcl.NewResource(ShellResourceType, names.Next("shell_"+c.Name)).
			String("cluster_name", scope.ClusterName).
			String("name", c.Name).
			String("script", c.Script).
			String("interval", c.Interval).
			String("timeout", c.Timeout).
			Bool("readonly", c.Readonly).
			OptionalString("shell", c.Shell).
			Build()
		t.Add(block, importID(c.Name))
	}
	return t
}
