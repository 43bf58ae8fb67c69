package domain

type ResourceKind string

const (
	KindTopic        ResourceKind = "topics"
	KindACL          ResourceKind = "acls"
	KindSchema       ResourceKind = "schemas"
	KindConnector    ResourceKind = "connectors"
	KindLogCollector ResourceKind = "logcollectors"
	KindHealthcheck  ResourceKind = "healthchecks"
	KindAlertRule    ResourceKind = "alert_rules"
)

func (rk ResourceKind) String() string {
	return string(rk)
}

// KindInfo is what the output sink needs to know about a kind.
type KindInfo struct {
	Kind     ResourceKind
	FileName string
	Title    string
	Noun     string
}

// ImportOrder is the fixed invocation order; adoption commands follow it.
var ImportOrder = []ResourceKind{
	KindTopic,
	KindACL,
	KindSchema,
	KindConnector,
	KindLogCollector,
	KindHealthcheck,
	KindAlertRule,
}

var kindInfo = map[ResourceKind]KindInfo{
	KindTopic:        {Kind: KindTopic, FileName: "topics.tf", Title: "Kafka Topics", Noun: "topics"},
	KindACL:          {Kind: KindACL, FileName: "acls.tf", Title: "Kafka ACLs", Noun: "ACLs"},
	KindSchema:       {Kind: KindSchema, FileName: "schemas.tf", Title: "Schema Registry Schemas", Noun: "schemas"},
	KindConnector:    {Kind: KindConnector, FileName: "connectors.tf", Title: "Kafka Connectors", Noun: "connectors"},
	KindLogCollector: {Kind: KindLogCollector, FileName: "logcollectors.tf", Title: "Log Collectors", Noun: "log collectors"},
	KindHealthcheck:  {Kind: KindHealthcheck, FileName: "healthchecks.tf", Title: "Healthchecks", Noun: "healthchecks"},
	KindAlertRule:    {Kind: KindAlertRule, FileName: "alert_rules.tf", Title: "Metric Alert Rules", Noun: "metric alert rules"},
}

func LookupKind(kind ResourceKind) (KindInfo, bool) {
	info, ok := kindInfo[kind]
	return info, ok
}

func (rk ResourceKind) Info() KindInfo {
	if info, ok := kindInfo[rk]; ok {
		return info
	}
	return KindInfo{Kind: rk, FileName: string(rk) + ".tf", Title: string(rk), Noun: string(rk)}
}
