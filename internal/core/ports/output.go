package ports

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/core/domain"
)

type OutputSink interface {
	WriteBootstrap(ctx context.Context) error
	// WriteTranscript returns the path written, or "" when the kind was empty.
	WriteTranscript(ctx context.Context, t domain.Transcript) (string, error)
	WriteAdoptionScript(ctx context.Context) (string, error)
	Files() ([]domain.OutputFile, error)
	Dir() string
}
