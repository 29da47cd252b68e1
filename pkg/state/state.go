package state

import (
	"context"

	"github.com/mflstudio/concours/pkg/messages"
)

// StateManager provides shared access to the last published game state.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the current game state.
	Get(ctx context.Context) (*messages.GameStateUpdate, error)
	// Set sets the current game state.
	Set(ctx context.Context, gameState *messages.GameStateUpdate) error
}
