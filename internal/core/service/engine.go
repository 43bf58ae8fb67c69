package service

import (
	"context"
	"fmt"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
	"github.com/olusolaa/axonops-importer/internal/errors"
)

type EngineConfig struct {
	RunID string
	Host  string
	Scope domain.ClusterScope
	Kinds []domain.ResourceKind
}

// ImportEngine runs one import: the bootstrap file, every selected kind in
// import order, the adoption script and finally the summary. Kinds run one
// after another and each gets a fresh record source.
type ImportEngine struct {
	registry *ComponentRegistry
	client   ports.PlatformClient
	sink     ports.OutputSink
	reporter ports.Reporter
	logger   ports.Logger
	config   EngineConfig
}

func NewImportEngine(
	registry *ComponentRegistry,
	client ports.PlatformClient,
	sink ports.OutputSink,
	reporter ports.Reporter,
	logger ports.Logger,
	cfg EngineConfig,
) (*ImportEngine, error) {
	if registry == nil {
		return nil, errors.New(errors.CodeConfigValidation, "component registry cannot be nil")
	}
	if client == nil {
		return nil, errors.New(errors.CodeConfigValidation, "platform client cannot be nil")
	}
	if sink == nil {
		return nil, errors.New(errors.CodeConfigValidation, "output sink cannot be nil")
	}
	if reporter == nil {
		return nil, errors.New(errors.CodeConfigValidation, "reporter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New(errors.CodeConfigValidation, "logger cannot be nil")
	}
	if cfg.Scope.ClusterName == "" || cfg.Scope.OrgID == "" {
		return nil, errors.New(errors.CodeConfigValidation, "cluster scope needs an org id and a cluster name")
	}

	return &ImportEngine{
		registry: registry,
		client:   client,
		sink:     sink,
		reporter: reporter,
		logger:   logger,
		config:   cfg,
	}, nil
}

func (e *ImportEngine) Run(ctx context.Context) error {
	scope := e.config.Scope
	e.logger.Infof(ctx, "Importing Kafka cluster %s of org %s from %s platform", scope.ClusterName, scope.OrgID, e.client.Type())

	exporters, err := e.registry.Ordered(e.config.Kinds)
	if err != nil {
		return err
	}
	if len(exporters) == 0 {
		return errors.NewUserFacing(errors.CodeConfigValidation, "no resource kinds registered for import", "Check the --kinds flag.")
	}

	if err := e.sink.WriteBootstrap(ctx); err != nil {
		return errors.Wrap(err, errors.CodeOutputWriteError, "failed writing provider configuration")
	}

	summary := domain.RunSummary{
		RunID:     e.config.RunID,
		Host:      e.config.Host,
		Scope:     scope,
		OutputDir: e.sink.Dir(),
		Kinds:     make([]domain.KindResult, 0, len(exporters)),
	}

	for _, exporter := range exporters {
		if err := ctx.Err(); err != nil {
			e.logger.Warnf(ctx, "Import cancelled before %s: %v", exporter.Kind(), err)
			return err
		}
		result, err := e.runKind(ctx, exporter, scope)
		if err != nil {
			return err
		}
		summary.Kinds = append(summary.Kinds, result)
		summary.Commands += result.Resources
	}

	scriptPath, err := e.sink.WriteAdoptionScript(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodeOutputWriteError, "failed writing import script")
	}
	summary.ScriptPath = scriptPath

	files, err := e.sink.Files()
	if err != nil {
		return err
	}
	summary.Files = files

	if failed := summary.FailedKinds(); failed > 0 {
		e.logger.Warnf(ctx, "Import finished with %d failed kinds: %d resources, %d failed requests", failed, summary.TotalResources(), summary.TotalFailures())
	} else {
		e.logger.Infof(ctx, "Import finished: %d resources, %d failed requests", summary.TotalResources(), summary.TotalFailures())
	}
	if err := e.reporter.Report(ctx, summary); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to generate final report")
	}
	return nil
}

func (e *ImportEngine) runKind(ctx context.Context, exporter ports.ResourceExporter, scope domain.ClusterScope) (domain.KindResult, error) {
	kind := exporter.Kind()
	log := e.logger.WithFields(map[string]any{"resource_kind": kind})
	log.Infof(ctx, "Fetching %s", kind.Info().Noun)

	src := e.client.NewSource(log)
	transcript := exporter.Export(ctx, src, scope, log)
	transcript.Kind = kind
	transcript.Fetch = src.Stats()

	if err := transcript.Validate(); err != nil {
		return domain.KindResult{}, errors.Wrap(err, errors.CodeInvariantError, fmt.Sprintf("exporter for %s produced an inconsistent transcript", kind))
	}

	path, err := e.sink.WriteTranscript(ctx, transcript)
	if err != nil {
		if !errors.KindLocal(err) {
			return domain.KindResult{}, err
		}
		// The sink drops the kind's commands when its file is rejected.
		log.Errorf(ctx, err, "Dropping %d %s: generated configuration did not verify", transcript.Len(), kind.Info().Noun)
		return domain.KindResult{
			Kind:    kind,
			Skipped: transcript.Skipped + transcript.Len(),
			Fetch:   transcript.Fetch,
			Error:   err.Error(),
		}, nil
	}

	if transcript.Fetch.Degraded() {
		log.Warnf(ctx, "Found %d %s, %d requests failed", transcript.Len(), kind.Info().Noun, transcript.Fetch.Failures)
	} else {
		log.Infof(ctx, "Found %d %s", transcript.Len(), kind.Info().Noun)
	}

	return domain.KindResult{
		Kind:      kind,
		Resources: transcript.Len(),
		Skipped:   transcript.Skipped,
		Fetch:     transcript.Fetch,
		File:      path,
	}, nil
}
