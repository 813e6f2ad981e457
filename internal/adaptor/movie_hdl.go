package adaptor

import (
	"encoding/json"
	"net/http"

	"streamview/internal/dto/request"
	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	userID, ok := optionalUserID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movies, err := h.service.ListPopular(r.Context(), page, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetFeatured handles GET /api/movies/featured
func (h *MovieHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.Featured(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get featured movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetTrending handles GET /api/movies/trending
func (h *MovieHandler) GetTrending(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Trending(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get trending movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// SearchMovies handles GET /api/movies/search?q=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	userID, ok := optionalUserID(r)
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetMovieDetails handles GET /api/movies/{id}/details
func (h *MovieHandler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	details, err := h.service.GetMovieDetails(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie details")
		return
	}

	utils.ResponseSuccess(w, details)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}
