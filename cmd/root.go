package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olusolaa/axonops-importer/internal/app"
	"github.com/olusolaa/axonops-importer/internal/config"
	apperrors "github.com/olusolaa/axonops-importer/internal/errors"
)

const envPrefix = "AXONOPS"

func newRootCommand(v *viper.Viper, opts ...app.BuildOption) *cobra.Command {
	defaults := config.DefaultConfig()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "axonops-importer <host> <org_id> <cluster_name> <api_key> [output_dir]",
		Short: "Generates Terraform configuration and import commands for an AxonOps-managed Kafka cluster.",
		Long: `axonops-importer reads the topics, ACLs, schemas, connectors, log collectors,
healthchecks and metric alert rules of one Kafka cluster from the AxonOps API and
writes matching Terraform resource files plus an import_commands.sh script that
adopts the live resources into Terraform state.

The scheme used to reach the server is taken from the PROTOCOL environment
variable (http by default).`,
		Example: `  axonops-importer axonops.example.com:8080 acme prod-kafka "$API_KEY"
  PROTOCOL=https axonops-importer axonops.example.com acme prod-kafka "$API_KEY" ./tf`,
		Args:          cobra.RangeArgs(4, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(v, cfgFile); err != nil {
				return err
			}
			applyArgs(v, args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.BuildApplicationFromViper(cmd.Context(), v, opts...)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .axonops-importer.yaml in the current or home directory)")
	flags.String("log-level", string(defaults.Settings.LogLevel), "Log level (debug, info, warn, error)")
	flags.String("log-format", string(defaults.Settings.LogFormat), "Log format (text, json)")
	flags.StringSlice("kinds", nil, "Resource kinds to import (topics, acls, schemas, connectors, logcollectors, healthchecks, alert_rules); default all")
	flags.String("report", defaults.Settings.ReporterType, "Summary format (text, json)")
	flags.Bool("no-color", defaults.Settings.NoColor, "Disable colored summary output")
	flags.String("token-type", defaults.Server.TokenType, "Authorization scheme sent with the API key (AxonApi, Bearer)")
	flags.Duration("timeout", defaults.Server.Timeout, "Per-request timeout")
	flags.Int("rate-limit", defaults.Server.RateLimitRPS, "Maximum API requests per second (1-100)")

	cobra.CheckErr(bindFlags(v, flags, flagBindings))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	cobra.CheckErr(v.BindEnv("server.protocol", envPrefix+"_PROTOCOL", "PROTOCOL"))

	return cmd
}

type flagBinding struct {
	key  string
	flag string
}

var flagBindings = []flagBinding{
	{"settings.log_level", "log-level"},
	{"settings.log_format", "log-format"},
	{"settings.kinds", "kinds"},
	{"settings.reporter", "report"},
	{"settings.no_color", "no-color"},
	{"server.token_type", "token-type"},
	{"server.timeout", "timeout"},
	{"server.rate_limit_rps", "rate-limit"},
}

// bindFlags binds each flag to its config key in order and stops at the
// first failure.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, bindings []flagBinding) error {
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			return fmt.Errorf("binding --%s to %s: %w", b.flag, b.key, err)
		}
	}
	return nil
}

// applyArgs stores the positional arguments under their config keys. They
// win over the config file and the environment.
func applyArgs(v *viper.Viper, args []string) {
	keys := []string{"server.host", "cluster.org_id", "cluster.name", "server.api_key", "output.dir"}
	for i, arg := range args {
		if i < len(keys) {
			v.Set(keys[i], arg)
		}
	}
}

func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".axonops-importer")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return apperrors.WrapUserFacing(err, apperrors.CodeConfigReadError, "failed to read config file", "Check the path passed with --config.")
	}
	return nil
}

// Execute runs the command and reports a failure the way the user should see
// it. It returns the process exit code.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	errOut := cmd.ErrOrStderr()
	userMsg, suggestion, userFacing := apperrors.GetUserFacingMessage(err)
	if !userFacing && !isAppError(err) {
		// Argument and flag errors from cobra itself.
		userMsg = err.Error()
		suggestion = "Run with --help for usage."
	}
	fmt.Fprintf(errOut, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(errOut, "Suggestion: %s\n", suggestion)
	}
	return 1
}

func isAppError(err error) bool {
	return apperrors.GetCode(err) != apperrors.CodeUnknown
}
