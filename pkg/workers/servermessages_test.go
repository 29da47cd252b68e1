package workers

import (
	"context"
	"testing"
	"time"

	mocks "github.com/mflstudio/concours/mocks/github.com/mflstudio/concours/pkg/workers"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/stretchr/testify/mock"
)

func ofType(t messages.MessageType) interface{} {
	return mock.MatchedBy(func(msg *messages.Message) bool {
		return msg.Type == t
	})
}

func TestServerMessageWorker_Routing(t *testing.T) {
	sender := mocks.NewMessageSender(t)
	serverMessageChan := make(chan ServerMessage, 4)
	done := make(chan struct{}, 3)

	sender.EXPECT().SendMessageToAll(mock.Anything, ofType(messages.MessageTypeServerGameState)).Run(func(ctx context.Context, msg *messages.Message) {
		done <- struct{}{}
	}).Once()
	sender.EXPECT().SendMessageToAllExcept(mock.Anything, "mover", ofType(messages.MessageTypeServerPlayerMoved)).Run(func(ctx context.Context, excludeClientID string, msg *messages.Message) {
		done <- struct{}{}
	}).Once()
	sender.EXPECT().SendMessageToClient(mock.Anything, "newcomer", ofType(messages.MessageTypeServerGameState)).Return(nil).Run(func(ctx context.Context, clientID string, msg *messages.Message) {
		done <- struct{}{}
	}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := NewServerMessageWorker(NewServerMessageWorkerOptions{
		Sender:            sender,
		ServerMessageChan: serverMessageChan,
	})
	go worker.Start(ctx)

	serverMessageChan <- ServerMessage{Type: messages.MessageTypeServerGameState, Message: &messages.GameStateUpdate{Phase: "LOBBY"}}
	serverMessageChan <- ServerMessage{Type: messages.MessageTypeServerPlayerMoved, Message: &messages.PlayerMoved{ID: "mover"}, ExcludeClientID: "mover"}
	serverMessageChan <- ServerMessage{Type: messages.MessageTypeServerGameState, Message: &messages.GameStateUpdate{}, TargetClientID: "newcomer"}
	// a payload of the wrong type is dropped
	serverMessageChan <- ServerMessage{Type: messages.MessageTypeServerGameState, Message: "oops"}

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for sends")
		}
	}
}
