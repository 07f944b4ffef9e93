// Package api serves the normaliser and document store over HTTP.
// Form submissions are normalised server-side before they are stored.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/custodia-labs/editable/internal/core/ports/driving"
	"github.com/custodia-labs/editable/internal/logger"
)

// maxFormBytes caps the size of a submitted form.
const maxFormBytes = 4 << 20

// ErrMissingNormaliseService is returned when the normalise service is not provided.
var ErrMissingNormaliseService = errors.New("api: normalise service is required")

// Ports aggregates the driving ports served over HTTP.
type Ports struct {
	// Normalise backs POST /normalize.
	Normalise driving.NormaliseService

	// Documents backs the /documents routes. Optional.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Normalise == nil {
		return ErrMissingNormaliseService
	}
	return nil
}

// Server routes HTTP requests to the driving ports.
type Server struct {
	router *chi.Mux
	ports  *Ports
}

// NewServer creates a server with every route registered.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		ports:  ports,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/normalize", s.handleNormalize)
	s.router.Get("/commands", s.handleCommands)

	s.router.Route("/documents", func(r chi.Router) {
		r.Use(s.requireDocuments)
		r.Get("/", s.handleListDocuments)
		r.Post("/", s.handleSaveDocument)
		r.Get("/{id}", s.handleGetDocument)
		r.Get("/{id}/export", s.handleExportDocument)
		r.Delete("/{id}", s.handleDeleteDocument)
	})
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown: %v", err)
		}
	}()

	logger.Info("listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) requireDocuments(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.ports.Documents == nil {
			respondError(w, http.StatusNotImplemented, "document storage is not configured")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// respondJSON writes payload as JSON. Markup is the payload of most
// responses, so '<' and '>' are not escaped.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		logger.Error("encoding response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
