package wire

import (
	"streamview/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireLibrary serves the locally persisted catalog; these routes never call the provider.
func wireLibrary(r chi.Router, libraryHandler *adaptor.LibraryHandler) {
	r.Route("/api/library", func(r chi.Router) {
		r.Get("/movies", libraryHandler.GetMovies)
		r.Get("/movies/{id}", libraryHandler.GetMovieByID)
		r.Get("/genres", libraryHandler.GetGenres)
	})
}
