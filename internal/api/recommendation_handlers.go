package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shelftalk/shelftalk-server/internal/http/response"
	"github.com/shelftalk/shelftalk-server/internal/service"
)

// handleCreateRecommendation creates a recommendation owned by the
// authenticated user.
func (s *Server) handleCreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRecommendationRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	rec, err := s.recommendationService.Create(r.Context(), getUserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, rec, s.logger)
}

// handleGetRecommendation returns a recommendation with its tags. Public.
func (s *Server) handleGetRecommendation(w http.ResponseWriter, r *http.Request) {
	recID := chi.URLParam(r, "id")
	if recID == "" {
		response.BadRequest(w, "Recommendation ID is required", s.logger)
		return
	}

	rec, err := s.recommendationService.Get(r.Context(), recID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, rec, s.logger)
}

// handleDeleteRecommendation deletes a recommendation the authenticated user owns.
func (s *Server) handleDeleteRecommendation(w http.ResponseWriter, r *http.Request) {
	recID := chi.URLParam(r, "id")
	if recID == "" {
		response.BadRequest(w, "Recommendation ID is required", s.logger)
		return
	}

	if err := s.recommendationService.Delete(r.Context(), getUserID(r.Context()), recID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
