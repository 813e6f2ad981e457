package wire

import (
	"streamview/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler) {
	r.Get("/api/genres", genreHandler.GetGenres)
	r.Post("/api/genres", genreHandler.CreateGenre)
	r.Get("/api/genres/{id}/movies", genreHandler.GetGenreMovies)
}
