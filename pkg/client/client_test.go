package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/network"
	"github.com/mflstudio/concours/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	network *network.NetworkManager
	queue   *queue.InMemoryQueue
	url     string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	q := queue.NewInMemoryQueue(16)
	n := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ClientManager:      network.NewClientManager(),
		ClientMessageQueue: q,
	})
	server := httptest.NewServer(n.Handler(ctx))
	t.Cleanup(server.Close)

	return &testServer{
		network: n,
		queue:   q,
		url:     "ws" + strings.TrimPrefix(server.URL, "http") + "/ws",
	}
}

type testClient struct {
	*Client
	gameStates   chan *messages.GameStateUpdate
	playersMoved chan *messages.PlayerMoved
	acks         chan string
}

func connect(t *testing.T, url string) *testClient {
	t.Helper()
	tc := &testClient{
		gameStates:   make(chan *messages.GameStateUpdate, 4),
		playersMoved: make(chan *messages.PlayerMoved, 4),
		acks:         make(chan string, 4),
	}
	tc.Client = NewClient(NewClientOptions{
		ServerURL:       url,
		GameStateChan:   tc.gameStates,
		PlayerMovedChan: tc.playersMoved,
		AckChan:         tc.acks,
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, tc.Connect(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		tc.HandleMessages(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return tc
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server message")
		var zero T
		return zero
	}
}

func TestClient_Ping(t *testing.T) {
	server := newTestServer(t)
	client := connect(t, server.url)

	require.NoError(t, client.Ping(context.Background(), "42"))
	assert.Equal(t, "42", receive(t, client.acks))
}

func TestClient_SendCommand(t *testing.T) {
	server := newTestServer(t)
	client := connect(t, server.url)
	ctx := context.Background()

	require.NoError(t, client.SendCommand(ctx, messages.JoinCommand{Name: "mathurin"}))
	require.NoError(t, client.SendCommand(ctx, messages.RevealTileCommand{TileID: 7}))
	// the ack proves both commands were handled
	require.NoError(t, client.Ping(ctx, "sync"))
	receive(t, client.acks)

	items := server.queue.ReadAllMessages()
	require.Len(t, items, 2)
	assert.Equal(t, messages.JoinCommand{Name: "mathurin"}, items[0].(*messages.ClientCommand).Command)
	assert.Equal(t, messages.RevealTileCommand{TileID: 7}, items[1].(*messages.ClientCommand).Command)
}

func TestClient_ReceivesServerMessages(t *testing.T) {
	server := newTestServer(t)
	client := connect(t, server.url)
	ctx := context.Background()

	require.NoError(t, client.Ping(ctx, "sync"))
	receive(t, client.acks)
	clients := server.network.ClientManager.GetClients()
	require.Len(t, clients, 1)

	gameState, err := messages.NewMessage(messages.MessageTypeServerGameState, &messages.GameStateUpdate{Phase: "MEMORIZE", MemorizeTimer: 12})
	require.NoError(t, err)
	require.NoError(t, server.network.SendMessageToClient(ctx, clients[0].ID, gameState))

	got := receive(t, client.gameStates)
	assert.Equal(t, "MEMORIZE", got.Phase)
	assert.Equal(t, 12, got.MemorizeTimer)

	moved, err := messages.NewMessage(messages.MessageTypeServerPlayerMoved, &messages.PlayerMoved{ID: "other", Pos: messages.MovePos{X: 1}})
	require.NoError(t, err)
	server.network.SendMessageToAll(ctx, moved)

	assert.Equal(t, &messages.PlayerMoved{ID: "other", Pos: messages.MovePos{X: 1}}, receive(t, client.playersMoved))
}

func TestClient_SendBeforeConnect(t *testing.T) {
	client := NewClient(NewClientOptions{ServerURL: "ws://localhost:1/ws"})
	assert.Error(t, client.Ping(context.Background(), "1"))
	assert.NoError(t, client.Close())
}
