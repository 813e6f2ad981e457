package wire

import (
	"streamview/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)

		// Static segments before {id}
		r.Get("/featured", movieHandler.GetFeatured)
		r.Get("/trending", movieHandler.GetTrending)
		r.Get("/search", movieHandler.SearchMovies)

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Get("/{id}/details", movieHandler.GetMovieDetails)
	})
}
