package workers

import (
	"context"
	"fmt"

	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
)

// MessageSender delivers serialized messages to connected clients.
type MessageSender interface {
	SendMessageToAll(ctx context.Context, msg *messages.Message)
	SendMessageToAllExcept(ctx context.Context, excludeClientID string, msg *messages.Message)
	SendMessageToClient(ctx context.Context, clientID string, msg *messages.Message) error
}

type ServerMessageWorker struct {
	sender            MessageSender
	serverMessageChan <-chan ServerMessage
}

// ServerMessage is an outbound message produced by the game loop.
// With neither client ID set it is broadcast to every client.
type ServerMessage struct {
	Type    messages.MessageType
	Message interface{}
	// TargetClientID sends the message to that client only.
	TargetClientID string
	// ExcludeClientID skips that client in a broadcast.
	ExcludeClientID string
}

type NewServerMessageWorkerOptions struct {
	Sender            MessageSender
	ServerMessageChan <-chan ServerMessage
}

func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	return &ServerMessageWorker{
		sender:            opts.Sender,
		serverMessageChan: opts.ServerMessageChan,
	}
}

// Start writes messages in the order the game loop produced them.
func (w *ServerMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.serverMessageChan:
			var err error
			switch msg.Type {
			case messages.MessageTypeServerGameState:
				err = w.handleServerGameState(ctx, msg)
			case messages.MessageTypeServerPlayerMoved:
				err = w.handleServerPlayerMoved(ctx, msg)
			default:
				log.Error("Unknown server message type: %v", msg.Type)
				continue
			}
			if err != nil {
				log.Error("Failed to handle server %s message: %v", msg.Type, err)
			}
		}
	}
}

func (w *ServerMessageWorker) handleServerGameState(ctx context.Context, msg ServerMessage) error {
	gameState, ok := msg.Message.(*messages.GameStateUpdate)
	if !ok {
		return fmt.Errorf("failed to cast server game state message")
	}

	message, err := messages.NewMessage(messages.MessageTypeServerGameState, gameState)
	if err != nil {
		return err
	}

	return w.send(ctx, msg, message)
}

func (w *ServerMessageWorker) handleServerPlayerMoved(ctx context.Context, msg ServerMessage) error {
	playerMoved, ok := msg.Message.(*messages.PlayerMoved)
	if !ok {
		return fmt.Errorf("failed to cast server player moved message")
	}

	message, err := messages.NewMessage(messages.MessageTypeServerPlayerMoved, playerMoved)
	if err != nil {
		return err
	}

	return w.send(ctx, msg, message)
}

func (w *ServerMessageWorker) send(ctx context.Context, msg ServerMessage, message *messages.Message) error {
	switch {
	case msg.TargetClientID != "":
		if err := w.sender.SendMessageToClient(ctx, msg.TargetClientID, message); err != nil {
			return fmt.Errorf("failed to send to client %s: %v", msg.TargetClientID, err)
		}
	case msg.ExcludeClientID != "":
		w.sender.SendMessageToAllExcept(ctx, msg.ExcludeClientID, message)
	default:
		w.sender.SendMessageToAll(ctx, message)
	}
	return nil
}
