package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"moviecatalog/internal/models"
	"moviecatalog/internal/service"

	"github.com/gorilla/mux"
)

// MovieHandler handles HTTP requests for movie operations
type MovieHandler struct {
	movies *service.MoviesService
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(movies *service.MoviesService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// ListMovies handles listing the whole catalog.
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	list, err := h.movies.ListMovies(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// GetMovie handles getting a specific movie.
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// CreateMovie handles adding a new movie to the catalog.
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var view models.MovieView
	if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.movies.CreateMovie(r.Context(), view)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteMovie handles removing a movie together with its reviews.
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.movies.DeleteMovie(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses an integer path variable, reporting a bad request on
// malformed input.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars[name], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
