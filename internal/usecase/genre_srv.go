package usecase

import (
	"context"
	"errors"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/internal/tmdb"
	"streamview/pkg/utils"

	"go.uber.org/zap"
)

const genreMoviesLimit = 20

type GenreService interface {
	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
	MoviesByGenre(ctx context.Context, genreID int) ([]response.MovieResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
}

type genreService struct {
	provider  MovieProvider
	enricher  *Enricher
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(provider MovieProvider, enricher *Enricher, genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		provider:  provider,
		enricher:  enricher,
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

// ListGenres serves the provider genre list and falls back to the locally
// persisted genres when the provider is unavailable.
func (s *genreService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.provider.GetGenres(ctx)
	if err == nil {
		out := make([]response.GenreResponse, len(genres))
		for i, g := range genres {
			out[i] = response.GenreFromProvider(g)
		}
		return out, nil
	}

	s.log.Warn("Provider genres unavailable, using local genres", zap.Error(err))

	local, localErr := s.genreRepo.FindAll(ctx)
	if localErr != nil {
		s.log.Error("Failed to get local genres", zap.Error(localErr))
		return nil, utils.UpstreamError("Failed to fetch genres", errors.Join(err, localErr))
	}

	return response.GenresFromEntities(local), nil
}

func (s *genreService) MoviesByGenre(ctx context.Context, genreID int) ([]response.MovieResponse, error) {
	if genreID < 1 {
		return nil, utils.ValidationError("Invalid genre ID", nil)
	}

	listing, err := s.provider.GetListing(ctx, tmdb.ByGenre(genreID, 1))
	if err != nil {
		s.log.Error("Failed to get movies by genre", zap.Error(err), zap.Int("genre_id", genreID))
		return nil, providerError(err, "Genre not found", "Failed to fetch movies by genre")
	}

	results := s.enricher.EnrichAll(ctx, firstN(listing.Results, genreMoviesLimit))
	return Movies(results, nil), nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError("Invalid genre data", errs)
	}

	name := strings.TrimSpace(req.Name)
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = response.Slugify(name)
	}

	genre := &entity.Genre{Name: name, Slug: slug}
	if err := s.genreRepo.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.ConflictError("Genre already exists", err)
		}
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("name", name))
		return nil, utils.InternalError("Failed to create genre", err)
	}

	s.log.Info("Genre created",
		zap.Int("genre_id", genre.ID),
		zap.String("slug", genre.Slug),
	)

	resp := response.GenreFromEntity(genre)
	return &resp, nil
}
