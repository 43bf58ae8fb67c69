package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/axonops-importer/internal/errors"
	"github.com/olusolaa/axonops-importer/internal/log"
)

const (
	DefaultOutputDir   = "./imported"
	DefaultProtocol    = "http"
	DefaultTokenType   = "AxonApi"
	DefaultClusterType = "kafka"
	DefaultTimeout     = 30 * time.Second
	DefaultRPS         = 20
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Cluster  ClusterConfig  `mapstructure:"cluster"`
	Output   OutputConfig   `mapstructure:"output"`
	Settings SettingsConfig `mapstructure:"settings"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host" validate:"required"`
	Protocol     string        `mapstructure:"protocol" validate:"oneof=http https"`
	APIKey       string        `mapstructure:"api_key" validate:"required"`
	TokenType    string        `mapstructure:"token_type" validate:"oneof=AxonApi Bearer"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimitRPS int           `mapstructure:"rate_limit_rps" validate:"min=1,max=100"`
}

type ClusterConfig struct {
	OrgID string `mapstructure:"org_id" validate:"required"`
	Name  string `mapstructure:"name" validate:"required"`
	Type  string `mapstructure:"type" validate:"oneof=kafka"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type SettingsConfig struct {
	LogLevel     log.Level  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    log.Format `mapstructure:"log_format" validate:"oneof=text json"`
	ReporterType string     `mapstructure:"reporter" validate:"oneof=text json"`
	NoColor      bool       `mapstructure:"no_color"`
	// Kinds restricts the run; empty means every kind.
	Kinds []string `mapstructure:"kinds"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Protocol:     DefaultProtocol,
			TokenType:    DefaultTokenType,
			Timeout:      DefaultTimeout,
			RateLimitRPS: DefaultRPS,
		},
		Cluster: ClusterConfig{
			Type: DefaultClusterType,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: "text",
		},
	}
}

// Load decodes v over the defaults and validates the result. Keys v does not
// set keep their default.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to parse configuration", "Check the types of the values in your configuration file and environment.")
	}
	cfg.normalize()
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Server.Host = strings.TrimSpace(c.Server.Host)
	c.Server.Protocol = strings.ToLower(strings.TrimSpace(c.Server.Protocol))
	kinds := make([]string, 0, len(c.Settings.Kinds))
	for _, k := range c.Settings.Kinds {
		if k = strings.TrimSpace(k); k != "" {
			kinds = append(kinds, k)
		}
	}
	c.Settings.Kinds = kinds
}

func (c *Config) Validate(ctx context.Context) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}
	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		value := fe.Value()
		if fe.Field() == "APIKey" {
			value = "****"
		}
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), value))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(),
		"Usage: axonops-importer <host> <org_id> <cluster_name> <api_key> [output_dir]")
}

func (c *Config) BaseURL() string {
	return c.Server.Protocol + "://" + c.Server.Host
}
