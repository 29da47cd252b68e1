package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/messages"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// WriteTimeout bounds a single write to a client
	WriteTimeout = 5 * time.Second
)

// WSServer represents a WebSocket server.
type WSServer struct {
	port           int
	tls            *TLSConfig
	allowedOrigins []string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewWSServerOptions struct {
	Port int
	TLS  *TLSConfig
	// AllowedOrigins are host patterns accepted in the Origin header.
	// Same-origin requests are always accepted.
	AllowedOrigins []string
}

// NewWSServer creates a new WebSocket server.
func NewWSServer(opts NewWSServerOptions) *WSServer {
	return &WSServer{
		port:           opts.Port,
		tls:            opts.TLS,
		allowedOrigins: opts.AllowedOrigins,
	}
}

// ControlConnectHandler registers a new connection and returns its client ID.
type ControlConnectHandler func(wsConn *websocket.Conn, remoteAddr string) string

// ControlDisconnectHandler is called once when a connection's read loop ends.
type ControlDisconnectHandler func(clientID string)

// ControlMessageHandler handles one inbound message. Messages of a connection
// are handled in the order they were received.
type ControlMessageHandler func(ctx context.Context, clientID string, wsConn *websocket.Conn, message *messages.Message)

type handlers struct {
	connect    ControlConnectHandler
	disconnect ControlDisconnectHandler
	message    ControlMessageHandler
}

// Handler returns the router serving the WebSocket endpoint at /ws.
// Connection read loops stop when ctx is done.
func (s *WSServer) Handler(ctx context.Context, connectHandler ControlConnectHandler, disconnectHandler ControlDisconnectHandler, messageHandler ControlMessageHandler) http.Handler {
	h := handlers{
		connect:    connectHandler,
		disconnect: disconnectHandler,
		message:    messageHandler,
	}

	r := mux.NewRouter()
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.allowedOrigins,
		})
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		log.Debug("New WebSocket connection from %s", r.RemoteAddr)
		s.handleWSConnection(ctx, conn, r.RemoteAddr, h)
	}).Methods(http.MethodGet)

	return r
}

// Start starts the WebSocket server and blocks until ctx is done or the
// listener fails.
func (s *WSServer) Start(ctx context.Context, connectHandler ControlConnectHandler, disconnectHandler ControlDisconnectHandler, messageHandler ControlMessageHandler) error {
	addr := fmt.Sprintf(":%d", s.port)
	server := &http.Server{
		Addr:    addr,
		Handler: s.Handler(ctx, connectHandler, disconnectHandler, messageHandler),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("WebSocket server listening on %s with TLS", addr)
		listenAndServe = func() error {
			return server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("WebSocket server listening on %s", addr)
		listenAndServe = server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("WebSocket server closed")
			return nil
		}
		return fmt.Errorf("websocket server error: %v", err)
	}
	return nil
}

// handleWSConnection handles a WebSocket connection.
func (s *WSServer) handleWSConnection(ctx context.Context, conn *websocket.Conn, remoteAddr string, h handlers) {
	conn.SetReadLimit(messages.MessageBufferSize)

	clientID := h.connect(conn, remoteAddr)
	defer func() {
		h.disconnect(clientID)
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		message, err := ReadMessageFromWS(ctx, conn)
		if err != nil {
			var readErr *readError
			if errors.As(err, &readErr) {
				status := websocket.CloseStatus(err)
				if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
					log.Debug("Error reading WebSocket message from %s: %v", clientID, err)
				}
				log.Trace("Connection closed for %s", clientID)
				return
			}
			log.Warn("Dropping malformed message from %s: %v", clientID, err)
			continue
		}
		message.ClientID = clientID

		h.message(ctx, clientID, conn, message)
	}
}

// readError marks a failure of the connection itself, as opposed to a
// frame that could not be decoded.
type readError struct {
	err error
}

func (e *readError) Error() string {
	return e.err.Error()
}

func (e *readError) Unwrap() error {
	return e.err
}

// WriteMessageToWS writes a Message to a WebSocket connection as a JSON text frame.
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := wsjson.Write(ctx, conn, msg); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return nil, &readError{err: err}
	}

	msg, err := messages.DeserializeMessage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
