package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct{}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

type Option func(*Reporter)

func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.writer = w
		}
	}
}

func NewReporter(cfg Config, logger ports.Logger, opts ...Option) (*Reporter, error) {
	r := &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type jsonReport struct {
	RunID      string         `json:"run_id,omitempty"`
	Host       string         `json:"host"`
	OrgID      string         `json:"org_id"`
	Cluster    string         `json:"cluster_name"`
	OutputDir  string         `json:"output_dir"`
	ScriptPath string         `json:"script_path"`
	Summary    jsonSummary    `json:"summary"`
	Kinds      []jsonKind     `json:"kinds"`
	Files      []jsonFileItem `json:"files"`
}

type jsonSummary struct {
	TotalResources int `json:"total_resources"`
	ImportCommands int `json:"import_commands"`
	FailedRequests int `json:"failed_requests"`
	FailedKinds    int `json:"failed_kinds"`
}

type jsonKind struct {
	Kind           domain.ResourceKind `json:"kind"`
	Resources      int                 `json:"resources"`
	Skipped        int                 `json:"skipped"`
	Requests       int                 `json:"requests"`
	NotFound       int                 `json:"not_found"`
	FailedRequests int                 `json:"failed_requests"`
	File           string              `json:"file,omitempty"`
	Error          string              `json:"error,omitempty"`
}

type jsonFileItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

func (r *Reporter) Report(ctx context.Context, s domain.RunSummary) error {
	if ctx.Err() != nil {
		r.logger.Warnf(ctx, "JSON report generation cancelled.")
		return ctx.Err()
	}

	report := jsonReport{
		RunID:      s.RunID,
		Host:       s.Host,
		OrgID:      s.Scope.OrgID,
		Cluster:    s.Scope.ClusterName,
		OutputDir:  s.OutputDir,
		ScriptPath: s.ScriptPath,
		Summary: jsonSummary{
			TotalResources: s.TotalResources(),
			ImportCommands: s.Commands,
			FailedRequests: s.TotalFailures(),
			FailedKinds:    s.FailedKinds(),
		},
		Kinds: make([]jsonKind, 0, len(s.Kinds)),
		Files: make([]jsonFileItem, 0, len(s.Files)),
	}
	for _, k := range s.Kinds {
		report.Kinds = append(report.Kinds, jsonKind{
			Kind:           k.Kind,
			Resources:      k.Resources,
			Skipped:        k.Skipped,
			Requests:       k.Fetch.Requests,
			NotFound:       k.Fetch.NotFound,
			FailedRequests: k.Fetch.Failures,
			File:           k.File,
			Error:          k.Error,
		})
	}
	for _, f := range s.Files {
		report.Files = append(report.Files, jsonFileItem{Name: f.Name, Path: f.Path, Size: f.Size})
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
