// Package api exposes the classifier, router and reframe pipeline and the
// insight feed over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/unholyblue/bloom/internal/conversation"
	"github.com/unholyblue/bloom/internal/store"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// Options wires a Server to its collaborators.
type Options struct {
	Conversation *conversation.Conversation
	Insights     store.InsightRepo

	// CORSOrigins lists allowed origins; wildcards as in go-chi/cors.
	CORSOrigins []string

	// Quiet disables request logging.
	Quiet bool
}

type Server struct {
	router   *chi.Mux
	conv     *conversation.Conversation
	insights store.InsightRepo
}

func NewServer(opts Options) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if !opts.Quiet {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{router: r, conv: opts.Conversation, insights: opts.Insights}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/classify", s.handleClassify)
		r.Post("/route", s.handleRoute)

		r.Get("/distortions", s.handleListDistortions)
		r.Get("/distortions/{key}", s.handleGetDistortion)

		r.Route("/insights", func(r chi.Router) {
			r.Get("/", s.handleListInsights)
			r.Post("/", s.handleCreateInsight)
			r.Post("/{id}/like", s.handleLikeInsight)
			r.Post("/{id}/view", s.handleViewInsight)
		})
	})
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}
