package healthcheck

const (
	defaultInterval       = "1m"
	defaultTimeout        = "1m"
	defaultMethod         = "GET"
	defaultExpectedStatus = 200
)

var defaultAgentTypes = []string{"all"}

type TCPCheck struct {
	Name                string   `mapstructure:"name"`
	TCP                 string   `mapstructure:"tcp"`
	Interval            string   `mapstructure:"interval"`
	Timeout             string   `mapstructure:"timeout"`
	Readonly            bool     `mapstructure:"readonly"`
	SupportedAgentTypes []string `mapstructure:"supportedAgentType"`
}

type HTTPCheck struct {
	Name                string            `mapstructure:"name"`
	URL                 string            `mapstructure:"url"`
	Method              string            `mapstructure:"method"`
	ExpectedStatus      int64             `mapstructure:"expectedStatus"`
	Interval            string            `mapstructure:"interval"`
	Timeout             string            `mapstructure:"timeout"`
	Readonly            bool              `mapstructure:"readonly"`
	Body                string            `mapstructure:"body"`
	Headers             map[string]string `mapstructure:"headers"`
	SupportedAgentTypes []string          `mapstructure:"supportedAgentType"`
}

type ShellCheck struct {
	Name     string `mapstructure:"name"`
	Script   string `mapstructure:"script"`
	Shell    string `mapstructure:"shell"`
	Interval string `mapstructure:"interval"`
	Timeout  string `mapstructure:"timeout"`
	Readonly bool   `mapstructure:"readonly"`
}

// Checks is the one object the healthchecks endpoint returns.
type Checks struct {
	TCP   []TCPCheck
	HTTP  []HTTPCheck
	Shell []ShellCheck
}

func (c Checks) Len() int {
	return len(c.TCP) + len(c.HTTP) + len(c.Shell)
}

type checksResponse struct {
	TCPChecks   []map[string]any `mapstructure:"tcpchecks"`
	HTTPChecks  []map[string]any `mapstructure:"httpchecks"`
	ShellChecks []map[string]any `mapstructure:"shellchecks"`
}

func newTCPCheck() TCPCheck {
	return TCPCheck{Interval: defaultInterval, Timeout: defaultTimeout}
}

func newHTTPCheck() HTTPCheck {
	return HTTPCheck{Interval: defaultInterval, Timeout: defaultTimeout, Method: defaultMethod, ExpectedStatus: defaultExpectedStatus}
}

func newShellCheck() ShellCheck {
	return ShellCheck{Interval: defaultInterval, Timeout: defaultTimeout}
}

func agentTypes(types []string) []string {
	if len(types) == 0 {
		return defaultAgentTypes
	}
	return types
}
