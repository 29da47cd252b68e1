package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/mflstudio/concours/pkg/api/handlers"
	"github.com/mflstudio/concours/pkg/api/middleware"
	"github.com/mflstudio/concours/pkg/config"
	"github.com/mflstudio/concours/pkg/log"
	"github.com/mflstudio/concours/pkg/repositories"
	"github.com/mflstudio/concours/pkg/state"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	StateManager state.StateManager
	Repository   repositories.Repository
	Roster       config.Roster
}

// NewAPIServer creates a new http.Server for the read-only HTTP API
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter returns the API routes. It is exported so the API can be served
// without a listener, e.g. from tests.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.CORS)

	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/state", handlers.HandleGetState(opts.StateManager)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/roster", handlers.HandleGetRoster(opts.Roster)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/rounds", handlers.HandleListRounds(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/rounds/{epoch:[0-9]+}/snapshot", handlers.HandleGetRoundSnapshot(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)

	return r
}

// Start starts the APIServer and blocks until ctx is done or the listener fails
func (s *APIServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop API server: %v", err)
		}
	}()

	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
