package adaptor

import (
	"net/http"
	"strconv"

	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LibraryHandler struct {
	service usecase.LibraryService
	log     *zap.Logger
}

func NewLibraryHandler(service usecase.LibraryService, log *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: service,
		log:     log.With(zap.String("handler", "library")),
	}
}

// GetMovies handles GET /api/library/movies?genre=&q=&featured=&trending=
func (h *LibraryHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := usecase.LibraryFilter{
		GenreSlug: query.Get("genre"),
		Query:     query.Get("q"),
	}

	flagErrs := make(map[string]string)
	for name, dest := range map[string]*bool{"featured": &filter.Featured, "trending": &filter.Trending} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			flagErrs[name] = "Must be true or false"
			continue
		}
		*dest = v
	}
	if len(flagErrs) > 0 {
		utils.ResponseBadRequest(w, "Invalid filter", flagErrs)
		return
	}

	movies, err := h.service.ListMovies(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "get library movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /api/library/movies/{id}
func (h *LibraryHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get library movie")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// GetGenres handles GET /api/library/genres
func (h *LibraryHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get library genres")
		return
	}

	utils.ResponseSuccess(w, genres)
}
