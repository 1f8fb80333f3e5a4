package handlers

import (
	"encoding/json"
	"net/http"

	"moviecatalog/internal/models"
	"moviecatalog/internal/service"
)

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	movies *service.MoviesService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(movies *service.MoviesService) *ReviewHandler {
	return &ReviewHandler{movies: movies}
}

// ListReviews handles listing the reviews owned by a movie.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.movies.ListReviews(r.Context(), movieID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// AddReview handles attaching a new review to a movie.
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var view models.ReviewView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.movies.AddReview(r.Context(), movieID, view)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteReview handles removing a review by its own id.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.movies.DeleteReview(r.Context(), reviewID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
