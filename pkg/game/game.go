package game

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/game/types"
	"github.com/mflstudio/concours/pkg/grid"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/questions"
	"github.com/mflstudio/concours/pkg/queue"
	"github.com/mflstudio/concours/pkg/repositories/models"
	"github.com/mflstudio/concours/pkg/state"
	"github.com/mflstudio/concours/pkg/workers"
)

// GameManager runs the game loop. It is the only writer of the session:
// transport goroutines hand it work through queues and it hands outbound
// messages to the server message worker.
type GameManager struct {
	clientMessageQueue   queue.Queue
	connectionEventQueue queue.Queue
	stateManager         state.StateManager
	serverMessageChan    chan<- workers.ServerMessage
	saveRoundChan        chan<- workers.SaveRoundRequest
	roster               config.Roster
	questions            *questions.Pool
	gridOptions          grid.Options
	memorizeSeconds      int
	feedbackDelay        time.Duration
	gameLoopInterval     time.Duration
	clock                Clock
	rng                  *rand.Rand

	session      *types.Session
	scheduler    *scheduler
	memorizeTask taskID
	// departed holds connections closed during the current tick. Their
	// commands may still be queued behind the disconnect and must not bind.
	departed map[string]struct{}
	// stateDropped is set when a game state could not be queued; the next
	// tick sends the latest snapshot in its place.
	stateDropped bool
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	ClientMessageQueue   queue.Queue
	ConnectionEventQueue queue.Queue
	StateManager         state.StateManager
	ServerMessageChan    chan<- workers.ServerMessage
	SaveRoundChan        chan<- workers.SaveRoundRequest
	Roster               config.Roster
	Questions            *questions.Pool
	Grid                 grid.Options
	MemorizeSeconds      int
	FeedbackDelay        time.Duration
	GameLoopInterval     time.Duration
	// Clock defaults to the wall clock.
	Clock Clock
	// Rand drives grid shuffles and question draws. Defaults to a randomly seeded source.
	Rand *rand.Rand
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	gm := &GameManager{
		clientMessageQueue:   opts.ClientMessageQueue,
		connectionEventQueue: opts.ConnectionEventQueue,
		stateManager:         opts.StateManager,
		serverMessageChan:    opts.ServerMessageChan,
		saveRoundChan:        opts.SaveRoundChan,
		roster:               opts.Roster,
		questions:            opts.Questions,
		gridOptions:          opts.Grid,
		memorizeSeconds:      opts.MemorizeSeconds,
		feedbackDelay:        opts.FeedbackDelay,
		gameLoopInterval:     opts.GameLoopInterval,
		clock:                opts.Clock,
		rng:                  opts.Rand,
		scheduler:            newScheduler(),
		departed:             make(map[string]struct{}),
	}
	if gm.clock == nil {
		gm.clock = realClock{}
	}
	if gm.rng == nil {
		gm.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if gm.questions == nil {
		gm.questions, _ = questions.NewPool(nil)
	}

	names := gm.roster.Names()
	gm.session = types.NewSession(names, grid.Generate(names, gm.gridOptions, gm.rng))

	return gm
}

// Start starts the game loop and blocks until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	gm.publishGameState()

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			gm.Stop()
			return nil
		case <-ticker.C:
			gm.gameTick(ctx)
		}
	}
}

// Stop archives the round in progress, if any.
func (gm *GameManager) Stop() {
	gm.archiveRound()
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(_ context.Context) {
	gm.processConnectionEvents()
	gm.processClientMessages()
	clear(gm.departed)
	gm.scheduler.runDue(gm.clock.Now(), gm.session.Epoch)
	gm.resendDroppedState()
}

// processConnectionEvents processes all pending connection events in the queue.
func (gm *GameManager) processConnectionEvents() {
	for _, item := range gm.connectionEventQueue.ReadAllMessages() {
		switch event := item.(type) {
		case *types.ConnectPlayerEvent:
			// bring the newcomer up to date; nothing else changed
			gm.sendGameState(event.ConnectionID)
		case *types.DisconnectPlayerEvent:
			gm.departed[event.ConnectionID] = struct{}{}
			gm.handleDisconnect(event.ConnectionID)
		default:
			log.Error("Unhandled connection event type: %T", event)
		}
	}
}

// processClientMessages processes all pending client commands in the queue
// in arrival order.
func (gm *GameManager) processClientMessages() {
	for _, item := range gm.clientMessageQueue.ReadAllMessages() {
		message, ok := item.(*messages.ClientCommand)
		if !ok {
			log.Error("Failed to cast message to messages.ClientCommand: %T", item)
			continue
		}

		switch command := message.Command.(type) {
		case messages.JoinCommand:
			gm.handleJoin(message.ClientID, command.Name)
		case messages.MoveCommand:
			gm.handleMove(message.ClientID, command)
		case messages.StartGameCommand:
			gm.handleStartGame(message.ClientID)
		case messages.RevealTileCommand:
			gm.handleRevealTile(message.ClientID, command.TileID)
		case messages.AnswerQuestionCommand:
			gm.handleAnswerQuestion(message.ClientID, command.AnswerIndex)
		default:
			log.Error("Unhandled command type: %T", command)
		}
	}
}

// broadcastGameState publishes the session and sends it to every client.
func (gm *GameManager) broadcastGameState() {
	update := gm.publishGameState()
	gm.send(workers.ServerMessage{
		Type:    messages.MessageTypeServerGameState,
		Message: update,
	})
}

// sendGameState sends the current session to one client.
func (gm *GameManager) sendGameState(clientID string) {
	gm.send(workers.ServerMessage{
		Type:           messages.MessageTypeServerGameState,
		Message:        gm.snapshot(),
		TargetClientID: clientID,
	})
}

func (gm *GameManager) publishGameState() *messages.GameStateUpdate {
	update := gm.snapshot()
	if err := gm.stateManager.Set(context.Background(), update); err != nil {
		log.Error("Failed to publish game state: %v", err)
	}
	return update
}

func (gm *GameManager) snapshot() *messages.GameStateUpdate {
	return ServerGameUpdateFromState(gm.session, gm.roster.Names(), gm.clock.Now().UnixMilli())
}

// send queues msg without blocking the loop. A dropped move relay is
// superseded by the next one; a dropped game state is replaced by a fresh
// broadcast on the next tick.
func (gm *GameManager) send(msg workers.ServerMessage) bool {
	select {
	case gm.serverMessageChan <- msg:
		return true
	default:
		log.Warn("Server message channel is full, dropping %s message", msg.Type)
		if msg.Type == messages.MessageTypeServerGameState {
			gm.stateDropped = true
		}
		return false
	}
}

// resendDroppedState broadcasts the current snapshot if an earlier one was dropped.
func (gm *GameManager) resendDroppedState() {
	if !gm.stateDropped {
		return
	}
	gm.stateDropped = false
	if gm.send(workers.ServerMessage{
		Type:    messages.MessageTypeServerGameState,
		Message: gm.snapshot(),
	}) {
		log.Debug("Resent game state dropped by a full channel")
	}
}

// archiveRound hands the scores of the current round to the save worker.
func (gm *GameManager) archiveRound() {
	if gm.session.Epoch == 0 || gm.saveRoundChan == nil {
		return
	}

	scores := make(map[string]int, len(gm.session.Scores))
	for name, score := range gm.session.Scores {
		scores[name] = score
	}
	result := &models.RoundResult{
		Epoch:    gm.session.Epoch,
		EndedAt:  gm.clock.Now().UnixMilli(),
		Scores:   scores,
		Revealed: gm.session.RevealedCount(),
		Winner:   models.Winner(scores),
	}

	select {
	case gm.saveRoundChan <- workers.SaveRoundRequest{Result: result}:
	default:
		log.Warn("Save channel is full, dropping result of round %d", result.Epoch)
	}
}
