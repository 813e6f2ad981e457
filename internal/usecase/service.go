package usecase

import (
	"streamview/internal/data/repository"
	"streamview/internal/tmdb"
	"streamview/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie     MovieService
	Genre     GenreService
	Series    SeriesService
	Watchlist WatchlistService
	Library   LibraryService
	User      UserService
}

func NewService(repo *repository.Repository, provider MovieProvider, config *utils.Config, log *zap.Logger) *Service {
	images := tmdb.NewImages(config.TMDB.ImageBaseURL)
	enricher := NewEnricher(provider, images, config.TMDB.MaxConcurrency, log)

	return &Service{
		Movie:     NewMovieService(provider, enricher, images, repo, log),
		Genre:     NewGenreService(provider, enricher, repo.Genre, log),
		Series:    NewSeriesService(provider, enricher, images, log),
		Watchlist: NewWatchlistService(repo.Watchlist, log),
		Library:   NewLibraryService(repo.Movie, repo.Genre, log),
		User:      NewUserService(repo.User, log),
	}
}
