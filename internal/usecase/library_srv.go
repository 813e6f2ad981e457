package usecase

import (
	"context"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	"streamview/internal/dto/response"
	"streamview/pkg/utils"

	"go.uber.org/zap"
)

// LibraryService reads the locally persisted catalog.
type LibraryService interface {
	ListMovies(ctx context.Context, filter LibraryFilter) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, id int) (*response.MovieResponse, error)
	ListGenres(ctx context.Context) ([]response.GenreResponse, error)
}

// LibraryFilter narrows the local catalog. GenreSlug wins over Query, which
// wins over the flags.
type LibraryFilter struct {
	GenreSlug string
	Query     string
	Featured  bool
	Trending  bool
}

type libraryService struct {
	movieRepo repository.MovieRepository
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewLibraryService(movieRepo repository.MovieRepository, genreRepo repository.GenreRepository, log *zap.Logger) LibraryService {
	return &libraryService{
		movieRepo: movieRepo,
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "library")),
	}
}

func (s *libraryService) ListMovies(ctx context.Context, filter LibraryFilter) ([]response.MovieResponse, error) {
	genreSlug := strings.TrimSpace(filter.GenreSlug)
	query := strings.TrimSpace(filter.Query)

	var (
		movies []*entity.MovieWithGenres
		err    error
	)
	switch {
	case genreSlug != "":
		movies, err = s.movieRepo.FindByGenreSlug(ctx, genreSlug)
	case query != "":
		movies, err = s.movieRepo.SearchByTitle(ctx, query)
	case filter.Featured || filter.Trending:
		movies, err = s.movieRepo.FindByFlags(ctx, filter.Featured, filter.Trending)
	default:
		movies, err = s.movieRepo.FindAllWithGenres(ctx)
	}

	if err != nil {
		s.log.Error("Failed to list library movies",
			zap.Error(err),
			zap.String("genre", genreSlug),
			zap.String("query", query),
			zap.Bool("featured", filter.Featured),
			zap.Bool("trending", filter.Trending),
		)
		return nil, utils.InternalError("Failed to fetch movies", err)
	}

	return response.MoviesFromEntities(movies), nil
}

func (s *libraryService) GetMovie(ctx context.Context, id int) (*response.MovieResponse, error) {
	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get library movie", zap.Error(err), zap.Int("movie_id", id))
		return nil, utils.InternalError("Failed to fetch movie", err)
	}
	if movie == nil {
		return nil, utils.NotFoundError("Movie not found")
	}

	resp := response.MovieFromEntity(movie)
	return &resp, nil
}

func (s *libraryService) ListGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list local genres", zap.Error(err))
		return nil, utils.InternalError("Failed to fetch genres", err)
	}

	return response.GenresFromEntities(genres), nil
}
