package usecase

import (
	"context"
	"errors"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/pkg/utils"

	"go.uber.org/zap"
)

type WatchlistService interface {
	GetWatchlist(ctx context.Context, userID int) ([]response.MovieResponse, error)
	AddToWatchlist(ctx context.Context, req *request.WatchlistRequest) (*response.WatchlistEntryResponse, error)
	RemoveFromWatchlist(ctx context.Context, userID, movieID int) error
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	log           *zap.Logger
}

func NewWatchlistService(watchlistRepo repository.WatchlistRepository, log *zap.Logger) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		log:           log.With(zap.String("service", "watchlist")),
	}
}

// GetWatchlist returns the user's saved movies, most recently added first.
// An unknown user has an empty watchlist.
func (s *watchlistService) GetWatchlist(ctx context.Context, userID int) ([]response.MovieResponse, error) {
	movies, err := s.watchlistRepo.FindMoviesByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get watchlist", zap.Error(err), zap.Int("user_id", userID))
		return nil, utils.InternalError("Failed to fetch watchlist", err)
	}

	result := response.MoviesFromEntities(movies)
	inList := true
	for i := range result {
		result[i].InWatchlist = &inList
	}

	return result, nil
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, req *request.WatchlistRequest) (*response.WatchlistEntryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to watchlist validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError("Invalid watchlist data", errs)
	}

	entry := &entity.WatchlistEntry{UserID: *req.UserID, MovieID: *req.MovieID}
	if err := s.watchlistRepo.Add(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, utils.NotFoundError("User or movie not found")
		}
		s.log.Error("Failed to add to watchlist", zap.Error(err))
		return nil, utils.InternalError("Failed to add to watchlist", err)
	}

	s.log.Info("Movie added to watchlist",
		zap.Int("user_id", entry.UserID),
		zap.Int("movie_id", entry.MovieID),
	)

	resp := response.WatchlistEntryToResponse(entry)
	return &resp, nil
}

// RemoveFromWatchlist is idempotent: removing an absent pair succeeds.
func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID, movieID int) error {
	removed, err := s.watchlistRepo.Remove(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to remove from watchlist",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("movie_id", movieID),
		)
		return utils.InternalError("Failed to remove from watchlist", err)
	}

	if removed {
		s.log.Info("Movie removed from watchlist",
			zap.Int("user_id", userID),
			zap.Int("movie_id", movieID),
		)
	}

	return nil
}
