package acl

const (
	defaultPatternType = "LITERAL"
	defaultHost        = "*"
)

// Resource is one resource pattern with the rules attached to it.
type Resource struct {
	ResourceType string `mapstructure:"resourceType"`
	ResourceName string `mapstructure:"resourceName"`
	PatternType  string `mapstructure:"resourcePatternType"`
	Rules        []Rule `mapstructure:"-"`
}

type Rule struct {
	Principal      string `mapstructure:"principal"`
	Host           string `mapstructure:"host"`
	Operation      string `mapstructure:"operation"`
	PermissionType string `mapstructure:"permissionType"`
}

type rawResource struct {
	Resource `mapstructure:",squash"`
	ACLs     []map[string]any `mapstructure:"acls"`
}

type aclsResponse struct {
	ACLResources []map[string]any `mapstructure:"aclResources"`
}

func newResource() rawResource {
	return rawResource{Resource: Resource{PatternType: defaultPatternType}}
}

func newRule() Rule {
	return Rule{Host: defaultHost}
}
