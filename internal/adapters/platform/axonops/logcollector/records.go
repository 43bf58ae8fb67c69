package logcollector

const defaultDateFormat = "yyyy-MM-dd HH:mm:ss,SSS"

var defaultAgentTypes = []string{"all"}

type LogCollector struct {
	Name                string   `mapstructure:"name"`
	Filename            string   `mapstructure:"filename"`
	DateFormat          string   `mapstructure:"dateFormat"`
	SupportedAgentTypes []string `mapstructure:"supportedAgentType"`
	InfoRegex           string   `mapstructure:"infoRegex"`
	WarningRegex        string   `mapstructure:"warningRegex"`
	ErrorRegex          string   `mapstructure:"errorRegex"`
	DebugRegex          string   `mapstructure:"debugRegex"`
	ErrorAlertThreshold int64    `mapstructure:"errorAlertThreshold"`
}

func newLogCollector() LogCollector {
	return LogCollector{DateFormat: defaultDateFormat}
}

// agentTypes falls back to "all" when the API sends an empty list.
func (lc LogCollector) agentTypes() []string {
	if len(lc.SupportedAgentTypes) == 0 {
		return defaultAgentTypes
	}
	return lc.SupportedAgentTypes
}
