package connector

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/axonops-importer/pkg/convert"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Connector is one connector of one Kafka Connect cluster. Config holds every
// key the API returned, stringified.
type Connector struct {
	ConnectCluster string
	Name           string
	Config         map[string]string
}

type connectCluster struct {
	ClusterName string `mapstructure:"clusterName"`
}

type connectorInfo struct {
	Config map[string]any `mapstructure:"config"`
}

type connectorEntry struct {
	Info connectorInfo `mapstructure:"info"`
}

type connectorsResponse struct {
	Connectors map[string]connectorEntry `mapstructure:"connectors"`
}

// configStrings stringifies a connector config. Scalars keep their text form;
// nested objects and arrays are carried as compact JSON with sorted keys.
func configStrings(config map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(config))
	for k, v := range config {
		if s, err := convert.Stringify(v); err == nil {
			out[k] = s
			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("key '%s': %w", k, err)
		}
		out[k] = string(encoded)
	}
	return out, nil
}
