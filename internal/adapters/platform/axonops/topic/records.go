package topic

import "strings"

const (
	defaultPartitions        = 1
	defaultReplicationFactor = 1
)

// Topic is one topic as listed by AxonOps, with the config entries fetched
// from its configs endpoint.
type Topic struct {
	Name              string        `mapstructure:"name"`
	Partitions        int64         `mapstructure:"partitionCount"`
	ReplicationFactor int64         `mapstructure:"replicationFactor"`
	Configs           []ConfigEntry `mapstructure:"-"`
}

type ConfigEntry struct {
	Name            string `mapstructure:"name"`
	Value           string `mapstructure:"value"`
	IsExplicitlySet bool   `mapstructure:"isExplicitlySet"`
}

type topicDescription struct {
	ConfigEntries []ConfigEntry `mapstructure:"configEntries"`
}

type configsResponse struct {
	TopicDescription []topicDescription `mapstructure:"topicDescription"`
}

func newTopic() Topic {
	return Topic{Partitions: defaultPartitions, ReplicationFactor: defaultReplicationFactor}
}

// IsInternal reports broker-owned topics such as __consumer_offsets.
func IsInternal(name string) bool {
	return strings.HasPrefix(name, "_") || name == "__consumer_offsets"
}
