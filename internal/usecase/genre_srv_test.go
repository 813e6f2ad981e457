package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	repomocks "streamview/internal/data/repository/mocks"
	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/internal/tmdb"
	"streamview/internal/usecase/mocks"
	"streamview/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newGenreService(t *testing.T) (GenreService, *mocks.MockMovieProvider, *repomocks.MockGenreRepository) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMovieProvider(ctrl)
	genres := repomocks.NewMockGenreRepository(ctrl)
	log := zap.NewNop()

	return NewGenreService(provider, NewEnricher(provider, testImages, 4, log), genres, log), provider, genres
}

func TestGenreService_ListGenres(t *testing.T) {
	service, provider, _ := newGenreService(t)

	provider.EXPECT().GetGenres(gomock.Any()).Return([]tmdb.Genre{
		{ID: 28, Name: "Action"},
		{ID: 878, Name: "Science Fiction"},
	}, nil)

	genres, err := service.ListGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []response.GenreResponse{
		{ID: 28, Name: "Action", Slug: "action"},
		{ID: 878, Name: "Science Fiction", Slug: "science-fiction"},
	}, genres)
}

func TestGenreService_ListGenres_LocalFallback(t *testing.T) {
	service, provider, genres := newGenreService(t)

	provider.EXPECT().GetGenres(gomock.Any()).Return(nil, &tmdb.Error{Op: "genres", Err: tmdb.ErrUpstream})
	genres.EXPECT().FindAll(gomock.Any()).Return([]*entity.Genre{
		{BaseSimple: entity.BaseSimple{ID: 1}, Name: "Drama", Slug: "drama"},
	}, nil)

	list, err := service.ListGenres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []response.GenreResponse{{ID: 1, Name: "Drama", Slug: "drama"}}, list)
}

func TestGenreService_ListGenres_BothFail(t *testing.T) {
	service, provider, genres := newGenreService(t)

	provider.EXPECT().GetGenres(gomock.Any()).Return(nil, errors.New("provider down"))
	genres.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := service.ListGenres(context.Background())
	assert.ErrorIs(t, err, utils.ErrUpstream)
}

func TestGenreService_MoviesByGenre(t *testing.T) {
	service, provider, _ := newGenreService(t)

	results := make([]tmdb.Movie, 30)
	for i := range results {
		results[i] = tmdb.Movie{ID: i + 1}
	}
	provider.EXPECT().GetListing(gomock.Any(), tmdb.ByGenre(28, 1)).Return(&tmdb.ListingPage{Results: results}, nil)
	for i := 1; i <= genreMoviesLimit; i++ {
		expectFullEnrichment(provider, i)
	}

	movies, err := service.MoviesByGenre(context.Background(), 28)
	require.NoError(t, err)
	assert.Len(t, movies, genreMoviesLimit)
}

func TestGenreService_MoviesByGenre_GenreNamesMatchList(t *testing.T) {
	service, provider, _ := newGenreService(t)

	provider.EXPECT().GetGenres(gomock.Any()).Return([]tmdb.Genre{
		{ID: 28, Name: "Action"},
		{ID: 12, Name: "Adventure"},
	}, nil).MinTimes(1)

	provider.EXPECT().GetListing(gomock.Any(), tmdb.ByGenre(28, 1)).Return(&tmdb.ListingPage{Results: []tmdb.Movie{
		{ID: 1, GenreIDs: []int{28, 12}},
		{ID: 2, GenreIDs: []int{28}},
	}}, nil)

	// movie 1 enriches fully, movie 2 falls back to its summary record
	full := detailsFor(1)
	full.Genres = []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 12, Name: "Adventure"}}
	provider.EXPECT().GetDetails(gomock.Any(), 1).Return(full, nil)
	provider.EXPECT().GetCredits(gomock.Any(), 1).Return(&tmdb.Credits{}, nil)
	provider.EXPECT().GetVideos(gomock.Any(), 1).Return(&tmdb.Videos{}, nil)

	down := &tmdb.Error{Op: "details", StatusCode: 503, Err: tmdb.ErrUpstream}
	provider.EXPECT().GetDetails(gomock.Any(), 2).Return(nil, down)
	provider.EXPECT().GetCredits(gomock.Any(), 2).Return(nil, down).AnyTimes()
	provider.EXPECT().GetVideos(gomock.Any(), 2).Return(nil, down).AnyTimes()

	list, err := service.ListGenres(context.Background())
	require.NoError(t, err)
	var action response.GenreResponse
	for _, g := range list {
		if g.ID == 28 {
			action = g
		}
	}
	require.Equal(t, 28, action.ID)

	movies, err := service.MoviesByGenre(context.Background(), 28)
	require.NoError(t, err)
	require.Len(t, movies, 2)

	for _, m := range movies {
		var got *response.GenreResponse
		for i := range m.Genres {
			if m.Genres[i].ID == 28 {
				got = &m.Genres[i]
			}
		}
		require.NotNil(t, got, "movie %d lacks genre 28", m.ID)
		assert.Equal(t, action, *got, "movie %d", m.ID)
	}
}

func TestGenreService_CreateGenre(t *testing.T) {
	service, _, genres := newGenreService(t)

	genres.EXPECT().Create(gomock.Any(), &entity.Genre{Name: "Science Fiction", Slug: "science-fiction"}).
		DoAndReturn(func(_ context.Context, g *entity.Genre) error {
			g.ID = 5
			return nil
		})

	genre, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: " Science Fiction "})
	require.NoError(t, err)
	assert.Equal(t, response.GenreResponse{ID: 5, Name: "Science Fiction", Slug: "science-fiction"}, *genre)
}

func TestGenreService_CreateGenre_Duplicate(t *testing.T) {
	service, _, genres := newGenreService(t)

	genres.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("create genre: %w", repository.ErrDuplicate))

	_, err := service.CreateGenre(context.Background(), &request.GenreRequest{Name: "Drama"})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.CodeConflict, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus())
}

func TestGenreService_CreateGenre_Invalid(t *testing.T) {
	service, _, _ := newGenreService(t)

	_, err := service.CreateGenre(context.Background(), &request.GenreRequest{})
	assert.ErrorIs(t, err, utils.ErrValidation)
}
