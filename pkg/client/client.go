package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// Client is a player connection to the game server, used by the console
// client and by bots.
type Client struct {
	serverURL       string
	gameStateChan   chan<- *messages.GameStateUpdate
	playerMovedChan chan<- *messages.PlayerMoved
	ackChan         chan<- string
	conn            *websocket.Conn
}

type NewClientOptions struct {
	// ServerURL is the WebSocket endpoint, e.g. ws://localhost:8080/ws
	ServerURL string
	// Nil channels discard the corresponding messages.
	GameStateChan   chan<- *messages.GameStateUpdate
	PlayerMovedChan chan<- *messages.PlayerMoved
	AckChan         chan<- string
}

func NewClient(opts NewClientOptions) *Client {
	return &Client{
		serverURL:       opts.ServerURL,
		gameStateChan:   opts.GameStateChan,
		playerMovedChan: opts.PlayerMovedChan,
		ackChan:         opts.AckChan,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *Client) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := websocket.Dial(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(-1)
	c.conn = conn
	return nil
}

// HandleMessages reads server messages until the connection closes or ctx is done.
func (c *Client) HandleMessages(ctx context.Context) error {
	for {
		_, b, err := c.conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				log.Trace("Connection to %s closed", c.serverURL)
				return nil
			}
			return fmt.Errorf("failed to read from server: %v", err)
		}

		if err := c.handleMessage(ctx, b); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

func (c *Client) handleMessage(ctx context.Context, b []byte) error {
	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return err
	}
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerGameState:
		gameState := &messages.GameStateUpdate{}
		if err := json.Unmarshal(msg.Payload, gameState); err != nil {
			return fmt.Errorf("failed to deserialize game state message: %v", err)
		}
		deliver(ctx, c.gameStateChan, gameState)
	case messages.MessageTypeServerPlayerMoved:
		playerMoved := &messages.PlayerMoved{}
		if err := json.Unmarshal(msg.Payload, playerMoved); err != nil {
			return fmt.Errorf("failed to deserialize player moved message: %v", err)
		}
		deliver(ctx, c.playerMovedChan, playerMoved)
	case messages.MessageTypeServerAck:
		deliver(ctx, c.ackChan, msg.Ack)
	default:
		return fmt.Errorf("received unexpected message type from WebSocket server: %s", msg.Type)
	}

	return nil
}

func deliver[T any](ctx context.Context, ch chan<- T, v T) {
	if ch == nil {
		return
	}
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}

// SendCommand sends a game command to the server.
func (c *Client) SendCommand(ctx context.Context, command messages.Command) error {
	msg, err := messages.EncodeCommand(command)
	if err != nil {
		return err
	}
	return c.SendMessage(ctx, msg)
}

// Ping asks the server to echo ack back.
func (c *Client) Ping(ctx context.Context, ack string) error {
	return c.SendMessage(ctx, &messages.Message{Type: messages.MessageTypeClientPing, Ack: ack})
}

// SendMessage sends a message to the WebSocket server. It is safe for
// concurrent use.
func (c *Client) SendMessage(ctx context.Context, msg *messages.Message) error {
	if c.conn == nil {
		return fmt.Errorf("not connected")
	}
	if err := wsjson.Write(ctx, c.conn, msg); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	return nil
}

// Close closes the WebSocket connection.
func (c *Client) Close() error {
	if c.conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	err := c.conn.Close(websocket.StatusNormalClosure, "")
	c.conn = nil
	return err
}
