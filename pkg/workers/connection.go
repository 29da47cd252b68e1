package workers

import (
	"context"

	gametypes "github.com/mflstudio/concours/pkg/game/types"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/network"
	"github.com/mflstudio/concours/pkg/queue"
)

type ConnectionEventWorker struct {
	clientEventChan      <-chan network.ClientEvent
	connectionEventQueue queue.Queue
}

type NewConnectionEventWorkerOptions struct {
	ClientEventChan      <-chan network.ClientEvent
	ConnectionEventQueue queue.Queue
}

// NewConnectionEventWorker creates a new ConnectionEventWorker.
// The worker turns transport connect and disconnect events into
// connection events on a queue for the game loop to process.
func NewConnectionEventWorker(opts NewConnectionEventWorkerOptions) *ConnectionEventWorker {
	return &ConnectionEventWorker{
		clientEventChan:      opts.ClientEventChan,
		connectionEventQueue: opts.ConnectionEventQueue,
	}
}

func (w *ConnectionEventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.clientEventChan:
			switch event.Type {
			case network.ClientEventTypeConnect:
				w.enqueue(&gametypes.ConnectPlayerEvent{ConnectionID: event.ClientID})
			case network.ClientEventTypeDisconnect:
				w.enqueue(&gametypes.DisconnectPlayerEvent{ConnectionID: event.ClientID})
			default:
				log.Error("Unknown client event type: %v", event.Type)
			}
		}
	}
}

func (w *ConnectionEventWorker) enqueue(event interface{}) {
	if err := w.connectionEventQueue.Enqueue(event); err != nil {
		log.Error("Failed to enqueue connection event %T: %v", event, err)
	}
}
