package alertrule

// Rule is one metric alert rule. Filters are keyed by the API filter name.
type Rule struct {
	ID            string  `mapstructure:"id"`
	Alert         string  `mapstructure:"alert"`
	For           string  `mapstructure:"for"`
	Operator      string  `mapstructure:"operator"`
	WarningValue  float64 `mapstructure:"warningValue"`
	CriticalValue float64 `mapstructure:"criticalValue"`
	Expr          string  `mapstructure:"expr"`
	Annotations   struct {
		Description string `mapstructure:"description"`
	} `mapstructure:"annotations"`
	Filters []Filter `mapstructure:"filters"`
}

type Filter struct {
	Name  string   `mapstructure:"Name"`
	Value []string `mapstructure:"Value"`
}

type rulesResponse struct {
	MetricRules []map[string]any `mapstructure:"metricrules"`
}

// filterAttributes maps API filter names onto resource attributes, in the
// order they are written.
var filterAttributes = []struct {
	Filter    string
	Attribute string
}{
	{"dc", "dc"},
	{"rack", "rack"},
	{"host_id", "host_id"},
	{"scope", "scope"},
	{"keyspace", "keyspace"},
	{"percentile", "percentile"},
	{"consistency", "consistency"},
	{"groupBy", "group_by"},
}

func (r Rule) filterValues(name string) []string {
	var values []string
	for _, f := range r.Filters {
		if f.Name == name {
			values = append(values, f.Value...)
		}
	}
	return values
}
