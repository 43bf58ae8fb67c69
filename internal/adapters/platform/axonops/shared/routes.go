package shared

import (
	"net/url"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

// Routes builds AxonOps API paths for one cluster. Every dynamic segment is
// path-escaped.
type Routes struct {
	org         string
	clusterType string
	cluster     string
}

func NewRoutes(scope domain.ClusterScope) Routes {
	clusterType := scope.ClusterType
	if clusterType == "" {
		clusterType = "kafka"
	}
	return Routes{
		org:         url.PathEscape(scope.OrgID),
		clusterType: url.PathEscape(clusterType),
		cluster:     url.PathEscape(scope.ClusterName),
	}
}

func (r Routes) clusterBase() string {
	return "/api/v1/" + r.org + "/" + r.clusterType + "/" + r.cluster
}

func (r Routes) Topics() string {
	return r.clusterBase() + "/topics"
}

func (r Routes) TopicConfigs(topic string) string {
	return r.clusterBase() + "/topics/" + url.PathEscape(topic) + "/configs"
}

func (r Routes) ACLs() string {
	return r.clusterBase() + "/acls"
}

func (r Routes) Subjects() string {
	return r.clusterBase() + "/registry/subjects"
}

func (r Routes) LatestSchema(subject string) string {
	return r.clusterBase() + "/registry/subjects/" + url.PathEscape(subject) + "/latest?getConfigs=true"
}

func (r Routes) ConnectClusters() string {
	return r.clusterBase() + "/connect/clusters/"
}

func (r Routes) Connectors(connectCluster string) string {
	return r.clusterBase() + "/connect/" + url.PathEscape(connectCluster) + "/connectors"
}

// The remaining collections hang off differently rooted paths.

func (r Routes) LogCollectors() string {
	return "/api/v1/logcollectors/" + r.org + "/" + r.clusterType + "/" + r.cluster
}

func (r Routes) Healthchecks() string {
	return "/api/v1/healthchecks/" + r.org + "/" + r.clusterType + "/" + r.cluster
}

func (r Routes) AlertRules() string {
	return "/api/v1/alert-rules/" + r.org + "/" + r.clusterType + "/" + r.cluster
}
