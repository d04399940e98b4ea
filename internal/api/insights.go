package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unholyblue/bloom/internal/store"
)

const (
	defaultInsightLimit = 20
	maxInsightLimit     = 100
)

func (s *Server) handleListInsights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.InsightFilter{
		Mood:   q.Get("mood"),
		Author: q.Get("author"),
		Limit:  defaultInsightLimit,
	}

	featured, err := queryBool(r, "featured")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter.Featured = featured

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filter.Limit = min(n, maxInsightLimit)
	}

	insights, err := s.insights.List(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list insights")
		return
	}
	if insights == nil {
		insights = []store.Insight{}
	}
	respondJSON(w, http.StatusOK, insights)
}

func (s *Server) handleCreateInsight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
		Mood    string `json:"mood"`
		Author  string `json:"author"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := s.insights.Create(r.Context(), store.Insight{
		Content: req.Content,
		Mood:    req.Mood,
		Author:  req.Author,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidInsight) {
			respondError(w, http.StatusBadRequest, "content is required")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create insight")
		return
	}
	respondJSON(w, http.StatusCreated, in)
}

func (s *Server) handleLikeInsight(w http.ResponseWriter, r *http.Request) {
	in, err := s.insights.Like(r.Context(), chi.URLParam(r, "id"))
	s.respondInsight(w, in, err)
}

func (s *Server) handleViewInsight(w http.ResponseWriter, r *http.Request) {
	in, err := s.insights.View(r.Context(), chi.URLParam(r, "id"))
	s.respondInsight(w, in, err)
}

func (s *Server) respondInsight(w http.ResponseWriter, in *store.Insight, err error) {
	switch {
	case errors.Is(err, store.ErrInsightNotFound):
		respondError(w, http.StatusNotFound, "insight not found")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "failed to update insight")
	default:
		respondJSON(w, http.StatusOK, in)
	}
}
