package network

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"github.com/mflstudio/concours/pkg/queue"
	"nhooyr.io/websocket"
)

type NetworkManager struct {
	ClientManager      *ClientManager
	ClientMessageQueue queue.Queue
	WSServer           *WSServer
}

type NewNetworkManagerOptions struct {
	ClientManager      *ClientManager
	ClientMessageQueue queue.Queue
	WSPort             int
	WSServerTLS        *TLSConfig
	AllowedOrigins     []string
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	return &NetworkManager{
		ClientManager:      options.ClientManager,
		ClientMessageQueue: options.ClientMessageQueue,
		WSServer: NewWSServer(NewWSServerOptions{
			Port:           options.WSPort,
			TLS:            options.WSServerTLS,
			AllowedOrigins: options.AllowedOrigins,
		}),
	}
}

// Start serves WebSocket clients until ctx is done.
func (n *NetworkManager) Start(ctx context.Context) error {
	return n.WSServer.Start(ctx, n.handleControlConnect, n.handleControlDisconnect, n.handleControlMessage)
}

// Handler returns the WebSocket router without starting a listener.
func (n *NetworkManager) Handler(ctx context.Context) http.Handler {
	return n.WSServer.Handler(ctx, n.handleControlConnect, n.handleControlDisconnect, n.handleControlMessage)
}

func (n *NetworkManager) handleControlConnect(wsConn *websocket.Conn, remoteAddr string) string {
	clientID := n.ClientManager.ConnectClient(wsConn, remoteAddr)
	log.Info("Client %s connected from %s", clientID, remoteAddr)
	return clientID
}

func (n *NetworkManager) handleControlDisconnect(clientID string) {
	n.ClientManager.DisconnectClient(clientID)
	log.Info("Client %s disconnected", clientID)
}

func (n *NetworkManager) handleControlMessage(ctx context.Context, clientID string, wsConn *websocket.Conn, message *messages.Message) {
	switch message.Type {
	case messages.MessageTypeClientPing:
		if err := n.handleClientPing(ctx, wsConn, message); err != nil {
			log.Error("Failed to handle client ping: %v", err)
		}
	default:
		command, err := messages.DecodeCommand(message)
		if err != nil {
			log.Warn("Rejected message from %s: %v", clientID, err)
			return
		}
		if err := n.ClientMessageQueue.Enqueue(&messages.ClientCommand{
			ClientID: clientID,
			Command:  command,
		}); err != nil {
			log.Error("Failed to enqueue message: %v", err)
		}
	}
}

// handleClientPing acknowledges a ping right away, bypassing the game loop.
func (n *NetworkManager) handleClientPing(ctx context.Context, wsConn *websocket.Conn, message *messages.Message) error {
	ack := &messages.Message{
		Type: messages.MessageTypeServerAck,
		Ack:  message.Ack,
	}
	if err := WriteMessageToWS(ctx, wsConn, ack); err != nil {
		return fmt.Errorf("failed to write ack message to client %s: %v", message.ClientID, err)
	}
	return nil
}

// SendMessageToAll writes msg to every connected client.
func (n *NetworkManager) SendMessageToAll(ctx context.Context, msg *messages.Message) {
	n.SendMessageToAllExcept(ctx, "", msg)
}

// SendMessageToAllExcept writes msg to every connected client but excludeClientID.
func (n *NetworkManager) SendMessageToAllExcept(ctx context.Context, excludeClientID string, msg *messages.Message) {
	for _, client := range n.ClientManager.GetClients() {
		if client.ID == excludeClientID {
			continue
		}
		if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
			log.Debug("Failed to send message to client %s: %v", client.ID, err)
		}
	}
}

// SendMessageToClient writes msg to a single client.
func (n *NetworkManager) SendMessageToClient(ctx context.Context, clientID string, msg *messages.Message) error {
	client, err := n.ClientManager.GetClient(clientID)
	if err != nil {
		return fmt.Errorf("failed to get client %s: %v", clientID, err)
	}

	if err := WriteMessageToWS(ctx, client.WSConn, msg); err != nil {
		return fmt.Errorf("failed to send message to client %s: %v", clientID, err)
	}

	return nil
}
