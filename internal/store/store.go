// Package store persists merge run history.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// ErrRunNotFound is returned when a run ID has no record.
var ErrRunNotFound = eris.New("run not found")

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for merge run history.
type Store interface {
	CreateRun(ctx context.Context, input model.RunInput) (*model.Run, error)
	CompleteRun(ctx context.Context, runID string, result *model.RunResult) error
	FailRun(ctx context.Context, runID string, runErr *model.RunError) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

const defaultListLimit = 100

func notFound(runID string) error {
	return eris.Wrapf(ErrRunNotFound, "run %s", runID)
}
