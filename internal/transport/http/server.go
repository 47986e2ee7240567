package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/docsignflow/docsign-bot/internal/shared/config"
	"github.com/go-telegram/bot/models"
	sloghttp "github.com/samber/slog-http"
)

// secretTokenHeader carries the webhook secret the transport echoes back.
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// UpdateHandler consumes one decoded transport update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *models.Update)
}

// Server handles HTTP requests for the bot webhook
type Server struct {
	cfg     *config.Config
	updates UpdateHandler
	logger  *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config, updates UpdateHandler) *Server {
	return &Server{
		cfg:     cfg,
		updates: updates,
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handler builds the routing table wrapped in logging and recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Webhook endpoint
	mux.HandleFunc("POST "+s.cfg.WebhookPath, s.handleWebhook)

	// Health check endpoint
	mux.HandleFunc("GET /health", s.handleHealth)

	// Liveness endpoint
	mux.HandleFunc("GET /{$}", s.handleRoot)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	return handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Webhook server starting", "addr", addr, "webhook_path", s.cfg.WebhookPath)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// handleWebhook decodes the update envelope and dispatches it. The transport
// always gets a 200 acknowledgment, whatever happened inside; only requests
// failing the secret token check are turned away.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if s.cfg.WebhookSecretToken != "" && r.Header.Get(secretTokenHeader) != s.cfg.WebhookSecretToken {
		s.logger.Warn("Webhook request with a bad secret token", "remote_addr", r.RemoteAddr)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update models.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Malformed envelopes are acked too so the transport does not retry them.
		s.logger.Error("Failed to decode webhook update", "error", err)
		s.writeAck(w)
		return
	}

	s.dispatch(r.Context(), &update)
	s.writeAck(w)
}

// dispatch hands the update to the bot handler, catching panics so the
// transport still gets its acknowledgment.
func (s *Server) dispatch(ctx context.Context, update *models.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("Panic while handling update", "panic", rec, "update_id", update.ID)
		}
	}()

	s.updates.HandleUpdate(ctx, update)
}

func (s *Server) writeAck(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"ok":true}`))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
