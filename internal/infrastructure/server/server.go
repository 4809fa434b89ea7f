// Package server exposes the evaluator over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"

	"business-advisor/internal/application/port/input"
	"business-advisor/internal/application/port/output"
	"business-advisor/internal/domain/entity"
	"business-advisor/internal/infrastructure/yelp"
)

type Server struct {
	evaluator input.BusinessEvaluator
	logger    output.LoggerPort
	router    chi.Router
}

func New(evaluator input.BusinessEvaluator, logger output.LoggerPort) *Server {
	s := &Server{
		evaluator: evaluator,
		logger:    logger,
	}

	httpLogger := httplog.NewLogger("business-advisor", httplog.Options{
		JSON:    true,
		Concise: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httplog.RequestLogger(httpLogger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/evaluate", s.handleEvaluate)

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the context is canceled, then shuts the
// server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("HTTP server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type evaluateRequest struct {
	// Business accepts either a bare business id or a business page URL.
	Business string `json:"business"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	businessID := yelp.ParseBusinessID(req.Business)
	if businessID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "business is required"})
		return
	}

	verdict, err := s.evaluator.Evaluate(r.Context(), businessID)
	if err != nil {
		s.logger.Error("Evaluation failed", "business_id", businessID, "error", err)
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, verdict)
}

// statusFor maps the error taxonomy onto HTTP statuses: unknown business
// is the caller's problem, thin evidence is unprocessable, and upstream
// generation or validation trouble is a bad gateway.
func statusFor(err error) int {
	var (
		notFound   *entity.NotFoundError
		noEvidence *entity.InsufficientEvidenceError
		genErr     *entity.GenerationError
		valErr     *entity.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &noEvidence):
		return http.StatusUnprocessableEntity
	case errors.As(err, &genErr), errors.As(err, &valErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
