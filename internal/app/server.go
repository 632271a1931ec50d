package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"

	"github.com/orgball2608/tweet-embed/internal/macro"
	"github.com/orgball2608/tweet-embed/pkg/config"
	"github.com/orgball2608/tweet-embed/pkg/errors"
	"github.com/orgball2608/tweet-embed/pkg/logger"
)

type Server struct {
	http   *http.Server
	macro  macro.Client
	logger logger.Logger
}

func NewServer(cfg *config.Config, log logger.Logger, m macro.Client) *Server {
	s := &Server{
		macro:  m,
		logger: log.WithComponent("HTTPServer"),
	}
	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: s.routes(),
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.healthCheckHandler)
	mux.HandleFunc("GET /embed/{id}", s.embedHandler)
	return mux
}

// Start binds the listener synchronously so port errors fail fx start-up.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}

	s.logger.Info(fmt.Sprintf("Starting server on %s", s.http.Addr))

	go func() {
		if err := s.http.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", "Error", err)
		}
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "Error", err)
	}
}

// embedHandler answers GET /embed/{id}. Query parameters become macro
// attributes, so /embed/123?lang=de renders a German embed.
func (s *Server) embedHandler(w http.ResponseWriter, r *http.Request) {
	tweetID := r.PathValue("id")

	attrs := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			attrs[key] = values[0]
		}
	}

	block, err := s.macro.Process(r.Context(), tweetID, attrs)
	if err != nil {
		status := statusFor(err)
		s.logger.Warn("Embed request failed", "tweet_id", tweetID, "status", status, "error", err)
		http.Error(w, errors.GetMessage(err), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(block.Source)); err != nil {
		s.logger.Error("Failed to write response", "Error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsMissingCredential(err):
		return http.StatusServiceUnavailable
	case errors.IsRemoteAPI(err), errors.IsMalformedResponse(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
