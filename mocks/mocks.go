package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

// Logger is a mock implementation of ports.Logger
type Logger struct {
	mock.Mock
}

func (m *Logger) Debugf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Infof(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Warnf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Errorf(ctx context.Context, err error, format string, args ...any) {
	m.Called(ctx, err, format, args)
}

func (m *Logger) WithFields(fields map[string]any) ports.Logger {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(ports.Logger)
}

// Fetcher is a mock implementation of ports.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Get(ctx context.Context, path string) domain.FetchResult {
	args := m.Called(ctx, path)
	return args.Get(0).(domain.FetchResult)
}

// ResourceExporter is a mock implementation of ports.ResourceExporter
type ResourceExporter struct {
	mock.Mock
}

func (m *ResourceExporter) Kind() domain.ResourceKind {
	args := m.Called()
	return args.Get(0).(domain.ResourceKind)
}

func (m *ResourceExporter) Export(ctx context.Context, src ports.RecordSource, scope domain.ClusterScope, logger ports.Logger) domain.Transcript {
	args := m.Called(ctx, src, scope, logger)
	return args.Get(0).(domain.Transcript)
}

// PlatformClient is a mock implementation of ports.PlatformClient
type PlatformClient struct {
	mock.Mock
}

func (m *PlatformClient) Type() string {
	args := m.Called()
	return args.String(0)
}

func (m *PlatformClient) NewSource(logger ports.Logger) ports.TrackedSource {
	args := m.Called(logger)
	return args.Get(0).(ports.TrackedSource)
}

// OutputSink is a mock implementation of ports.OutputSink
type OutputSink struct {
	mock.Mock
}

func (m *OutputSink) WriteBootstrap(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *OutputSink) WriteTranscript(ctx context.Context, t domain.Transcript) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *OutputSink) WriteAdoptionScript(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *OutputSink) Files() ([]domain.OutputFile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutputFile), args.Error(1)
}

func (m *OutputSink) Dir() string {
	args := m.Called()
	return args.String(0)
}

// Reporter is a mock implementation of ports.Reporter
type Reporter struct {
	mock.Mock
}

func (m *Reporter) Report(ctx context.Context, summary domain.RunSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}
