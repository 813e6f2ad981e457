package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"streamview/internal/data/entity"
	"streamview/internal/data/repository"
	repomocks "streamview/internal/data/repository/mocks"
	"streamview/internal/dto/request"
	"streamview/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newWatchlistService(t *testing.T) (WatchlistService, *repomocks.MockWatchlistRepository) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockWatchlistRepository(ctrl)
	return NewWatchlistService(repo, zap.NewNop()), repo
}

func intRef(v int) *int { return &v }

func TestWatchlistService_GetWatchlist(t *testing.T) {
	service, repo := newWatchlistService(t)

	repo.EXPECT().FindMoviesByUser(gomock.Any(), 1).Return([]*entity.MovieWithGenres{
		{Movie: entity.Movie{Base: entity.Base{ID: 2}, Title: "Newest", Rating: "8"}, Genres: []entity.Genre{}},
		{Movie: entity.Movie{Base: entity.Base{ID: 1}, Title: "Oldest", Rating: "6.5"}, Genres: []entity.Genre{}},
	}, nil)

	movies, err := service.GetWatchlist(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, movies, 2)
	assert.Equal(t, "Newest", movies[0].Title)
	assert.Equal(t, "8.0", movies[0].Rating)
	require.NotNil(t, movies[0].InWatchlist)
	assert.True(t, *movies[0].InWatchlist)
}

func TestWatchlistService_GetWatchlist_Empty(t *testing.T) {
	service, repo := newWatchlistService(t)

	repo.EXPECT().FindMoviesByUser(gomock.Any(), 3).Return([]*entity.MovieWithGenres{}, nil)

	movies, err := service.GetWatchlist(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestWatchlistService_AddToWatchlist(t *testing.T) {
	service, repo := newWatchlistService(t)

	addedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.EXPECT().Add(gomock.Any(), &entity.WatchlistEntry{UserID: 1, MovieID: 5}).
		DoAndReturn(func(_ context.Context, e *entity.WatchlistEntry) error {
			e.ID = 9
			e.AddedAt = addedAt
			return nil
		})

	entry, err := service.AddToWatchlist(context.Background(), &request.WatchlistRequest{UserID: intRef(1), MovieID: intRef(5)})
	require.NoError(t, err)
	assert.Equal(t, 9, entry.ID)
	assert.Equal(t, addedAt, entry.AddedAt)
}

func TestWatchlistService_AddToWatchlist_MissingField(t *testing.T) {
	service, _ := newWatchlistService(t)

	_, err := service.AddToWatchlist(context.Background(), &request.WatchlistRequest{MovieID: intRef(5)})

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.CodeValidation, appErr.Code)
	assert.Equal(t, map[string]string{"userId": "This field is required"}, appErr.Details)
}

func TestWatchlistService_AddToWatchlist_UnknownMovie(t *testing.T) {
	service, repo := newWatchlistService(t)

	repo.EXPECT().Add(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("add watchlist entry: %w", repository.ErrMissingReference))

	_, err := service.AddToWatchlist(context.Background(), &request.WatchlistRequest{UserID: intRef(1), MovieID: intRef(999)})
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestWatchlistService_RemoveFromWatchlist(t *testing.T) {
	service, repo := newWatchlistService(t)

	repo.EXPECT().Remove(gomock.Any(), 1, 999).Return(false, nil)
	assert.NoError(t, service.RemoveFromWatchlist(context.Background(), 1, 999), "removing an absent pair succeeds")

	repo.EXPECT().Remove(gomock.Any(), 1, 2).Return(false, errors.New("db down"))
	assert.ErrorIs(t, service.RemoveFromWatchlist(context.Background(), 1, 2), utils.ErrInternal)
}
