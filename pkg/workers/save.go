package workers

import (
	"bytes"
	"context"
	"time"

	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/repositories"
	"github.com/mflstudio/concours/pkg/repositories/models"
	"github.com/mflstudio/concours/pkg/state"
)

const (
	// shutdownSaveTimeout bounds the writes of requests still pending at shutdown
	shutdownSaveTimeout = 5 * time.Second
)

type SaveGameStateWorker struct {
	repository    repositories.Repository
	saveRoundChan <-chan SaveRoundRequest
	stateManager  state.StateManager
	interval      time.Duration
	// lastSaved is the archive of the last checkpointed snapshot
	lastSaved []byte
}

type NewSaveGameStateWorkerOptions struct {
	Repository    repositories.Repository
	SaveRoundChan <-chan SaveRoundRequest
	StateManager  state.StateManager
	Interval      time.Duration
}

// SaveRoundRequest asks for the result of a finished round to be archived.
type SaveRoundRequest struct {
	Result *models.RoundResult
}

// NewSaveGameStateWorker creates a new SaveGameStateWorker.
// The worker archives round results sent by the game loop and
// periodically checkpoints the published game state to the repository.
func NewSaveGameStateWorker(opts NewSaveGameStateWorkerOptions) *SaveGameStateWorker {
	return &SaveGameStateWorker{
		repository:    opts.Repository,
		saveRoundChan: opts.SaveRoundChan,
		stateManager:  opts.StateManager,
		interval:      opts.Interval,
	}
}

func (w *SaveGameStateWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case saveRequest := <-w.saveRoundChan:
			w.saveRoundResult(ctx, saveRequest)
		case <-ticker.C:
			w.checkpoint(ctx)
		}
	}
}

// drain saves the requests already queued when the worker is stopped.
func (w *SaveGameStateWorker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownSaveTimeout)
	defer cancel()

	for {
		select {
		case saveRequest := <-w.saveRoundChan:
			w.saveRoundResult(ctx, saveRequest)
		default:
			return
		}
	}
}

func (w *SaveGameStateWorker) saveRoundResult(ctx context.Context, saveRequest SaveRoundRequest) {
	if err := w.repository.SaveRoundResult(ctx, saveRequest.Result); err != nil {
		log.Error("Failed to save round result for epoch %d: %v", saveRequest.Result.Epoch, err)
		return
	}
	log.Debug("Saved round result %d for epoch %d", saveRequest.Result.ID, saveRequest.Result.Epoch)
}

func (w *SaveGameStateWorker) checkpoint(ctx context.Context) {
	gameState, err := w.stateManager.Get(ctx)
	if err != nil {
		log.Error("Failed to get current game state: %v", err)
		return
	}
	// nothing to save before the first round
	if gameState.Epoch == 0 {
		return
	}

	data, err := messages.SerializeGameState(gameState)
	if err != nil {
		log.Error("Failed to serialize game state: %v", err)
		return
	}
	if bytes.Equal(data, w.lastSaved) {
		return
	}

	err = w.repository.SaveSnapshot(ctx, &models.Snapshot{
		Epoch:     gameState.Epoch,
		Timestamp: gameState.Timestamp,
		Data:      data,
	})
	if err != nil {
		log.Error("Failed to save game state: %v", err)
		return
	}
	w.lastSaved = data
}
