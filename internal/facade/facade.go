// Package facade is a local stand-in for the remote Pine lint service. It
// accepts the same form POST the real endpoint does and returns
// deterministic diagnostics, so the CLI can be demonstrated and exercised
// without network access.
package facade

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kaigouthro/pinelint/internal/interfaces"
	"github.com/kaigouthro/pinelint/internal/logging"
)

// Service is the stub lint service.
type Service struct {
	cfg    Config
	router chi.Router
	logger interfaces.Logger
}

// NewService creates the service and mounts its routes.
func NewService(cfg Config, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NewStderrLogger("Facade")
	}
	s := &Service{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Service) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/pine-facade/translate_light", s.handleTranslate)
}

// Router exposes the handler for tests and embedding.
func (s *Service) Router() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured address.
func (s *Service) Start() error {
	s.logger.Info("facade listening", interfaces.Field{Key: "addr", Value: s.cfg.Addr})
	return http.ListenAndServe(s.cfg.Addr, s.router)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// handleTranslate imitates the translate_light endpoint. The optional
// ?mode= query switches the reply into one of the real service's failure
// shapes so every triage arm of the client can be exercised locally:
//
//	mode=plain   — 200 with a text/plain body
//	mode=garbage — 200 declared JSON with an undecodable body
//	mode=fail    — 500 with a plain error body
func (s *Service) handleTranslate(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("mode") {
	case "plain":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("translate_light stub: plain mode"))
		return
	case "garbage":
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
		return
	case "fail":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal facade error (stub)"))
		return
	}

	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, reply{
			ID:      uuid.NewString(),
			Success: false,
			Reason:  "malformed form body",
		})
		return
	}

	source := r.PostFormValue("source")
	if source == "" {
		s.writeJSON(w, http.StatusBadRequest, reply{
			ID:      uuid.NewString(),
			Success: false,
			Reason:  "source must not be empty",
		})
		return
	}

	issues := checkSource(source)
	s.logger.Info("linted source",
		interfaces.Field{Key: "bytes", Value: len(source)},
		interfaces.Field{Key: "issues", Value: len(issues)})

	s.writeJSON(w, http.StatusOK, reply{
		ID:      uuid.NewString(),
		Success: !hasErrors(issues),
		Result:  issues,
	})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", interfaces.Field{Key: "error", Value: err.Error()})
	}
}
