package usecase

import (
	"context"

	"streamview/internal/dto/response"
	"streamview/internal/tmdb"

	"go.uber.org/zap"
)

const seriesLimit = 20

// SeriesService serves the series pages. The provider catalog used here is
// the movie catalog, so series are trending movies flagged IsSeries.
type SeriesService interface {
	ListSeries(ctx context.Context) ([]response.MovieResponse, error)
	GetSeriesDetails(ctx context.Context, id int) (*response.SeriesDetailsResponse, error)
}

type seriesService struct {
	provider MovieProvider
	enricher *Enricher
	images   tmdb.Images
	log      *zap.Logger
}

func NewSeriesService(provider MovieProvider, enricher *Enricher, images tmdb.Images, log *zap.Logger) SeriesService {
	return &seriesService{
		provider: provider,
		enricher: enricher,
		images:   images,
		log:      log.With(zap.String("service", "series")),
	}
}

func (s *seriesService) ListSeries(ctx context.Context) ([]response.MovieResponse, error) {
	listing, err := s.provider.GetListing(ctx, tmdb.Trending(1))
	if err != nil {
		s.log.Error("Failed to get series listing", zap.Error(err))
		return nil, providerError(err, "Series not found", "Failed to fetch series")
	}

	results := s.enricher.EnrichAll(ctx, firstN(listing.Results, seriesLimit))
	return Movies(results, func(m *response.MovieResponse) { m.IsSeries = true }), nil
}

func (s *seriesService) GetSeriesDetails(ctx context.Context, id int) (*response.SeriesDetailsResponse, error) {
	en, err := s.enricher.Fetch(ctx, id)
	if err != nil {
		s.log.Warn("Failed to get series details", zap.Error(err), zap.Int("series_id", id))
		return nil, providerError(err, "Series not found", "Failed to fetch series details")
	}

	series := en.Normalize(s.images)
	series.IsSeries = true

	return &response.SeriesDetailsResponse{
		Series:   series,
		Trailers: response.TrailerList(en.Videos.Results),
	}, nil
}
