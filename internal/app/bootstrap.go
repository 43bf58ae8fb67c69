package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/olusolaa/axonops-importer/internal/adapters/output/filesystem"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/acl"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/alertrule"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/connector"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/healthcheck"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/logcollector"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/schema"
	"github.com/olusolaa/axonops-importer/internal/adapters/platform/axonops/topic"
	"github.com/olusolaa/axonops-importer/internal/adapters/tfhcl"
	"github.com/olusolaa/axonops-importer/internal/config"
	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/core/service"
	"github.com/olusolaa/axonops-importer/internal/errors"
	"github.com/olusolaa/axonops-importer/internal/log"
	jsonreporter "github.com/olusolaa/axonops-importer/internal/reporting/json"
	"github.com/olusolaa/axonops-importer/internal/reporting/text"
)

type buildOptions struct {
	fs       afero.Fs
	reporter ports.Reporter
	logCfg   *log.Config
}

type BuildOption func(*buildOptions)

// WithFs routes every generated file through fs.
func WithFs(fs afero.Fs) BuildOption {
	return func(o *buildOptions) { o.fs = fs }
}

func WithReporter(r ports.Reporter) BuildOption {
	return func(o *buildOptions) { o.reporter = r }
}

// WithLogConfig overrides where and how logs are written; level and format
// from the configuration still apply when unset.
func WithLogConfig(cfg log.Config) BuildOption {
	return func(o *buildOptions) { o.logCfg = &cfg }
}

func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, opts ...BuildOption) (*Application, error) {
	options := &buildOptions{}
	for _, opt := range opts {
		opt(options)
	}

	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg, options.logCfg)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger = logger.WithFields(map[string]any{"run_id": runID, "cluster": cfg.Cluster.Name})
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	}

	kinds, err := parseKinds(cfg.Settings.Kinds)
	if err != nil {
		return nil, err
	}

	scope := domain.ClusterScope{
		OrgID:       cfg.Cluster.OrgID,
		ClusterType: cfg.Cluster.Type,
		ClusterName: cfg.Cluster.Name,
	}

	clientLog := logger.WithFields(map[string]any{"component": "client", "platform": axonops.PlatformType})
	client, err := axonops.NewClient(axonops.Config{
		Host:         cfg.Server.Host,
		Protocol:     cfg.Server.Protocol,
		APIKey:       cfg.Server.APIKey,
		TokenType:    cfg.Server.TokenType,
		Timeout:      cfg.Server.Timeout,
		RateLimitRPS: cfg.Server.RateLimitRPS,
	}, clientLog)
	if err != nil {
		return nil, err
	}
	clientLog.Debugf(ctx, "AxonOps client targets %s", client.BaseURL())

	var sinkOpts []filesystem.SinkOption
	if options.fs != nil {
		sinkOpts = append(sinkOpts, filesystem.WithFs(options.fs))
	}
	sink, err := filesystem.NewSink(filesystem.Config{
		Dir: cfg.Output.Dir,
		Provider: tfhcl.ProviderSettings{
			Host:      cfg.Server.Host,
			Protocol:  cfg.Server.Protocol,
			OrgID:     cfg.Cluster.OrgID,
			TokenType: cfg.Server.TokenType,
		},
		Header: filesystem.ScriptHeader{ClusterName: cfg.Cluster.Name, RunID: runID},
	}, logger.WithFields(map[string]any{"component": "sink"}), sinkOpts...)
	if err != nil {
		return nil, err
	}

	reporter := options.reporter
	if reporter == nil {
		reporter, err = newReporter(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	registry := service.NewComponentRegistry()
	exporters := []ports.ResourceExporter{
		topic.NewHandler(),
		acl.NewHandler(),
		schema.NewHandler(),
		connector.NewHandler(),
		logcollector.NewHandler(),
		healthcheck.NewHandler(),
		alertrule.NewHandler(),
	}
	for _, exporter := range exporters {
		if err := registry.RegisterExporter(exporter); err != nil {
			return nil, err
		}
	}
	logger.Debugf(ctx, "Registered %d resource exporters", len(exporters))

	engine, err := service.NewImportEngine(registry, client, sink, reporter,
		logger.WithFields(map[string]any{"component": "engine"}),
		service.EngineConfig{
			RunID: runID,
			Host:  cfg.Server.Host,
			Scope: scope,
			Kinds: kinds,
		})
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize import engine")
	}

	return NewApplication(engine, logger, runID), nil
}

func newLogger(cfg *config.Config, override *log.Config) (ports.Logger, error) {
	logCfg := log.DefaultConfig()
	logCfg.Level = cfg.Settings.LogLevel
	logCfg.Format = cfg.Settings.LogFormat
	if override != nil {
		if override.Level != "" {
			logCfg.Level = override.Level
		}
		if override.Format != "" {
			logCfg.Format = override.Format
		}
		if override.Output != nil {
			logCfg.Output = override.Output
		}
	}
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	return logger, nil
}

func newReporter(ctx context.Context, cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	reportLog := logger.WithFields(map[string]any{"component": "reporter", "type": cfg.Settings.ReporterType})
	switch cfg.Settings.ReporterType {
	case text.ReporterTypeText:
		reportLog.Debugf(ctx, "Using text reporter (Color: %t)", !cfg.Settings.NoColor)
		return text.NewReporter(text.Config{NoColor: cfg.Settings.NoColor}, reportLog)
	case jsonreporter.ReporterTypeJSON:
		reportLog.Debugf(ctx, "Using JSON reporter")
		return jsonreporter.NewReporter(jsonreporter.Config{}, reportLog)
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.ReporterType), "Supported: text, json")
	}
}
