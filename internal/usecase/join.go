package usecase

import (
	"context"

	"streamview/internal/data/repository"
	"streamview/internal/dto/response"

	"go.uber.org/zap"
)

// markWatchlist sets InWatchlist on provider-backed movies, whose IDs are
// TMDB ids. Membership goes through local movies linked by tmdb_id. A lookup
// failure leaves the flags unset instead of failing the response.
func markWatchlist(ctx context.Context, repo repository.WatchlistRepository, log *zap.Logger, userID int, movies []response.MovieResponse) {
	if len(movies) == 0 {
		return
	}

	ids := make([]int, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
	}

	members, err := repo.TMDBIDsInWatchlist(ctx, userID, ids)
	if err != nil {
		log.Warn("Failed to attach watchlist membership",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return
	}

	for i := range movies {
		in := members[movies[i].ID]
		movies[i].InWatchlist = &in
	}
}
