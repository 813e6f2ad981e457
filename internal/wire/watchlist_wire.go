package wire

import (
	"streamview/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWatchlist(r chi.Router, watchlistHandler *adaptor.WatchlistHandler) {
	r.Route("/api/watchlist", func(r chi.Router) {
		r.Post("/", watchlistHandler.AddToWatchlist)
		r.Get("/{userId}", watchlistHandler.GetWatchlist)
		r.Delete("/{userId}/{movieId}", watchlistHandler.RemoveFromWatchlist)
	})
}
