package app

import (
	"context"

	"github.com/olusolaa/axonops-importer/internal/core/ports"
)

// Application is the wired importer, ready to run once.
type Application struct {
	Engine ports.ImportEngine
	Logger ports.Logger
	RunID  string
}

func NewApplication(engine ports.ImportEngine, logger ports.Logger, runID string) *Application {
	return &Application{
		Engine: engine,
		Logger: logger,
		RunID:  runID,
	}
}

func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting import run %s", a.RunID)

	if err := a.Engine.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, err, "Import failed")
		return err
	}

	a.Logger.Infof(ctx, "Import completed successfully")
	return nil
}
