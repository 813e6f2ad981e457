package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/internal/tmdb"
	"streamview/pkg/utils"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	popularLimit  = 20
	trendingLimit = 10
	searchLimit   = 10
	similarLimit  = 10
)

type MovieService interface {
	ListPopular(ctx context.Context, page int, userID *int) ([]response.MovieResponse, error)
	Featured(ctx context.Context) (*response.MovieResponse, error)
	Trending(ctx context.Context) ([]response.MovieResponse, error)
	Search(ctx context.Context, query string) ([]response.MovieResponse, error)
	GetMovie(ctx context.Context, id int, userID *int) (*response.MovieResponse, error)
	GetMovieDetails(ctx context.Context, id int) (*response.MovieDetailsResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	provider MovieProvider
	enricher *Enricher
	images   tmdb.Images
	repo     *repository.Repository
	log      *zap.Logger
}

func NewMovieService(
	provider MovieProvider,
	enricher *Enricher,
	images tmdb.Images,
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		provider: provider,
		enricher: enricher,
		images:   images,
		repo:     repo,
		log:      log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListPopular(ctx context.Context, page int, userID *int) ([]response.MovieResponse, error) {
	listing, err := s.provider.GetListing(ctx, tmdb.Popular(page))
	if err != nil {
		s.log.Error("Failed to get popular movies", zap.Error(err), zap.Int("page", page))
		return nil, providerError(err, "Movies not found", "Failed to fetch movies")
	}

	movies := Movies(s.enricher.EnrichAll(ctx, firstN(listing.Results, popularLimit)), nil)
	if userID != nil {
		markWatchlist(ctx, s.repo.Watchlist, s.log, *userID, movies)
	}

	s.log.Info("Popular movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("page", page),
		zap.Int("total_pages", listing.TotalPages),
	)

	return movies, nil
}

func (s *movieService) Featured(ctx context.Context) (*response.MovieResponse, error) {
	listing, err := s.provider.GetListing(ctx, tmdb.TopRated(1))
	if err != nil {
		s.log.Error("Failed to get top rated movies", zap.Error(err))
		return nil, utils.UpstreamError("Failed to fetch featured movie", err)
	}

	if len(listing.Results) == 0 {
		return nil, utils.NotFoundError("No featured movie found")
	}

	en, err := s.enricher.Fetch(ctx, listing.Results[0].ID)
	if err != nil {
		s.log.Error("Failed to enrich featured movie",
			zap.Error(err),
			zap.Int("movie_id", listing.Results[0].ID),
		)
		return nil, utils.UpstreamError("Failed to fetch featured movie", err)
	}

	movie := en.Normalize(s.images)
	movie.Featured = true

	return &movie, nil
}

func (s *movieService) Trending(ctx context.Context) ([]response.MovieResponse, error) {
	listing, err := s.provider.GetListing(ctx, tmdb.Trending(1))
	if err != nil {
		s.log.Error("Failed to get trending movies", zap.Error(err))
		return nil, utils.UpstreamError("Failed to fetch trending movies", err)
	}

	results := s.enricher.EnrichAll(ctx, firstN(listing.Results, trendingLimit))
	return Movies(results, func(m *response.MovieResponse) { m.Trending = true }), nil
}

func (s *movieService) Search(ctx context.Context, query string) ([]response.MovieResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ValidationError("Search query is required", map[string]string{"q": "This field is required"})
	}

	listing, err := s.provider.GetListing(ctx, tmdb.Search(query, 1))
	if err != nil {
		s.log.Error("Failed to search movies", zap.Error(err), zap.String("query", query))
		return nil, providerError(err, "No movies found", "Failed to search movies")
	}

	movies := Movies(s.enricher.EnrichAll(ctx, firstN(listing.Results, searchLimit)), nil)

	s.log.Info("Movies searched",
		zap.String("query", query),
		zap.Int("count", len(movies)),
		zap.Int("total_results", listing.TotalResults),
	)

	return movies, nil
}

func (s *movieService) GetMovie(ctx context.Context, id int, userID *int) (*response.MovieResponse, error) {
	en, err := s.enricher.Fetch(ctx, id)
	if err != nil {
		s.log.Warn("Failed to get movie", zap.Error(err), zap.Int("movie_id", id))
		return nil, providerError(err, "Movie not found", "Failed to fetch movie")
	}

	movie := en.Normalize(s.images)
	if userID != nil {
		movies := []response.MovieResponse{movie}
		markWatchlist(ctx, s.repo.Watchlist, s.log, *userID, movies)
		movie = movies[0]
	}

	return &movie, nil
}

func (s *movieService) GetMovieDetails(ctx context.Context, id int) (*response.MovieDetailsResponse, error) {
	var (
		en      *Enrichment
		similar *tmdb.ListingPage
	)

	// the similar listing is fetched alongside the enrichment triple
	p := pool.New().WithErrors()
	p.Go(func() error {
		var err error
		en, err = s.enricher.Fetch(ctx, id)
		return err
	})
	p.Go(func() error {
		var err error
		similar, err = s.provider.GetSimilar(ctx, id, 1)
		return err
	})

	if err := p.Wait(); err != nil {
		s.log.Warn("Failed to get movie details", zap.Error(err), zap.Int("movie_id", id))
		return nil, providerError(err, "Movie not found", "Failed to fetch movie details")
	}

	similarMovies := make([]response.MovieResponse, 0, similarLimit)
	for _, rec := range firstN(similar.Results, similarLimit) {
		similarMovies = append(similarMovies, response.MovieFromProvider(rec, nil, nil, s.images, nil))
	}

	return &response.MovieDetailsResponse{
		Movie:         en.Normalize(s.images),
		SimilarMovies: similarMovies,
		Trailers:      response.TrailerList(en.Videos.Results),
	}, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError("Invalid movie data", errs)
	}

	var genres []*entity.Genre
	if len(req.GenreIDs) > 0 {
		var err error
		genres, err = s.repo.Genre.FindByIDs(ctx, req.GenreIDs)
		if err != nil {
			s.log.Error("Failed to check genres", zap.Error(err), zap.Ints("genre_ids", req.GenreIDs))
			return nil, utils.InternalError("Failed to create movie", err)
		}
		if missing := missingGenreIDs(req.GenreIDs, genres); len(missing) > 0 {
			return nil, utils.ValidationError("Invalid movie data", map[string]string{
				"genreIds": fmt.Sprintf("Unknown genre ids: %v", missing),
			})
		}
	}

	movie := &entity.Movie{
		TMDBID:      req.TMDBID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		PosterURL:   req.PosterURL,
		BackdropURL: req.BackdropURL,
		VideoURL:    req.VideoURL,
		Year:        req.Year,
		Duration:    req.Duration,
		Rating:      response.NormalizeRating(req.Rating),
		Director:    req.Director,
		Cast:        req.Cast,
		Featured:    req.Featured,
		Trending:    req.Trending,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warn("Movie already linked to provider record", zap.Intp("tmdb_id", movie.TMDBID))
			return nil, utils.ConflictError("Movie already exists", err)
		}
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", movie.Title))
		return nil, utils.InternalError("Failed to create movie", err)
	}

	if len(genres) > 0 {
		movieGenres := make([]*entity.MovieGenre, len(genres))
		for i, g := range genres {
			movieGenres[i] = &entity.MovieGenre{MovieID: movie.ID, GenreID: g.ID}
		}

		if err := s.repo.MovieGenre.CreateBatch(ctx, movieGenres); err != nil {
			s.log.Error("Failed to create movie-genre relationships",
				zap.Error(err),
				zap.Int("movie_id", movie.ID),
			)
			// no transaction: undo the movie row so no half-linked movie remains
			if delErr := s.repo.Movie.Delete(ctx, movie.ID); delErr != nil {
				s.log.Error("Failed to remove movie after genre failure", zap.Error(delErr))
			}
			return nil, utils.InternalError("Failed to create movie", err)
		}
	}

	created := &entity.MovieWithGenres{Movie: *movie, Genres: make([]entity.Genre, len(genres))}
	for i, g := range genres {
		created.Genres[i] = *g
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genres)),
	)

	resp := response.MovieFromEntity(created)
	return &resp, nil
}

func missingGenreIDs(requested []int, found []*entity.Genre) []int {
	have := make(map[int]bool, len(found))
	for _, g := range found {
		have[g.ID] = true
	}

	var missing []int
	for _, id := range requested {
		if !have[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
