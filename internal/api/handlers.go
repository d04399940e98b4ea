package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/router"
)

type textRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs the whole pipeline. Generation failures are not
// errors: the outcome comes back with reframed=false.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, s.conv.Respond(r.Context(), req.Text))
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, distortion.Classify(req.Text))
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var result distortion.Result
	if err := decodeJSON(w, r, &result); err != nil {
		respondError(w, http.StatusBadRequest, "invalid detection result")
		return
	}
	if result.Confidence < 0 || result.Confidence > 1 {
		respondError(w, http.StatusBadRequest, "confidence must be between 0 and 1")
		return
	}
	respondJSON(w, http.StatusOK, router.Route(result))
}

func (s *Server) handleListDistortions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, distortion.All())
}

func (s *Server) handleGetDistortion(w http.ResponseWriter, r *http.Request) {
	d, ok := distortion.Lookup(chi.URLParam(r, "key"))
	if !ok {
		respondError(w, http.StatusNotFound, "distortion not found")
		return
	}
	respondJSON(w, http.StatusOK, d)
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, key string) (*bool, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, errors.New(key + " must be true or false")
	}
	return &b, nil
}
