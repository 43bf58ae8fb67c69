package schema

const (
	defaultSchemaType = "AVRO"
	defaultSchema     = "{}"
)

// Schema is the latest registered version of one subject.
type Schema struct {
	Subject       string `mapstructure:"-"`
	Schema        string `mapstructure:"schema"`
	SchemaType    string `mapstructure:"type"`
	IsSoftDeleted bool   `mapstructure:"isSoftDeleted"`
}

func newSchema(subject string) Schema {
	return Schema{Subject: subject, Schema: defaultSchema, SchemaType: defaultSchemaType}
}
