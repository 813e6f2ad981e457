package usecase

import (
	"context"
	"errors"

	"streamview/internal/tmdb"
	"streamview/pkg/utils"
)

//go:generate mockgen -destination=mocks/provider_mock.go -package=mocks streamview/internal/usecase MovieProvider

// MovieProvider is the slice of the metadata provider the services need.
// *tmdb.Client implements it.
type MovieProvider interface {
	GetListing(ctx context.Context, q tmdb.ListingQuery) (*tmdb.ListingPage, error)
	GetDetails(ctx context.Context, id int) (*tmdb.Movie, error)
	GetCredits(ctx context.Context, id int) (*tmdb.Credits, error)
	GetVideos(ctx context.Context, id int) (*tmdb.Videos, error)
	GetSimilar(ctx context.Context, id, page int) (*tmdb.ListingPage, error)
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
}

var _ MovieProvider = (*tmdb.Client)(nil)

// providerError translates a provider failure into an AppError. The provider
// status code stays in the wrapped cause and is never shown to clients.
func providerError(err error, notFoundMessage, failMessage string) error {
	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		return utils.NotFoundError(notFoundMessage)
	case errors.Is(err, tmdb.ErrInvalidQuery):
		return utils.ValidationError(err.Error(), nil)
	default:
		return utils.UpstreamError(failMessage, err)
	}
}

// firstN trims a listing to the number of items an endpoint serves.
func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
