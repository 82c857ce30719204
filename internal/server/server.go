package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	mcpHandler  http.Handler
	connected   func() bool
	bearerToken string
	log         *slog.Logger
	router      chi.Router
}

// New creates a new Server with all routes configured. mcpHandler is the
// streamable MCP transport; connected reports whether a live Garmin
// session is loaded. An empty bearerToken disables auth on /mcp.
func New(mcpHandler http.Handler, connected func() bool, bearerToken string, log *slog.Logger) *Server {
	s := &Server{
		mcpHandler:  mcpHandler,
		connected:   connected,
		bearerToken: bearerToken,
		log:         log,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/health", s.handleHealth)

	// MCP endpoint (bearer token required when configured)
	s.router.Group(func(r chi.Router) {
		if s.bearerToken != "" {
			r.Use(BearerAuth(s.bearerToken))
		}
		r.Handle("/mcp", s.mcpHandler)
		r.Handle("/mcp/*", s.mcpHandler)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":           "healthy",
		"server":           "FreeStride",
		"garmin_connected": s.connected(),
	})
}
