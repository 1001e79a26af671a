// Package store persists the application state snapshot as a single JSON
// blob under a well-known key.
package store

import (
	"context"

	"github.com/sells-group/icp-autopilot/internal/model"
)

// StateKey is the well-known snapshot key.
const StateKey = "icp-autopilot-state"

// Store persists and restores the full application state. Load never fails
// on a missing or corrupt snapshot; both yield an empty initial state.
type Store interface {
	Load(ctx context.Context) (*model.AppState, error)
	Save(ctx context.Context, state *model.AppState) error

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
