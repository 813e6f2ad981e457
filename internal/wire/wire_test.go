package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"streamview/internal/data/repository"
	repomocks "streamview/internal/data/repository/mocks"
	"streamview/internal/dto/response"
	"streamview/internal/tmdb"
	"streamview/internal/usecase/mocks"
	"streamview/pkg/middleware"
	"streamview/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

type testApp struct {
	provider  *mocks.MockMovieProvider
	watchlist *repomocks.MockWatchlistRepository
	server    *httptest.Server
}

func newTestApp(t *testing.T, db Pinger) *testApp {
	ctrl := gomock.NewController(t)
	a := &testApp{
		provider:  mocks.NewMockMovieProvider(ctrl),
		watchlist: repomocks.NewMockWatchlistRepository(ctrl),
	}

	repo := &repository.Repository{
		User:       repomocks.NewMockUserRepository(ctrl),
		Movie:      repomocks.NewMockMovieRepository(ctrl),
		Genre:      repomocks.NewMockGenreRepository(ctrl),
		MovieGenre: repomocks.NewMockMovieGenreRepository(ctrl),
		Watchlist:  a.watchlist,
	}
	config := &utils.Config{
		TMDB: utils.TMDBConfig{MaxConcurrency: 4},
		CORS: utils.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	app := Wiring(repo, a.provider, db, config, zap.NewNop())
	a.server = httptest.NewServer(app.Router)
	t.Cleanup(a.server.Close)
	return a
}

func (a *testApp) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, a.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_SearchWithoutQuery(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	resp := app.do(t, http.MethodGet, "/api/movies/search", "")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body utils.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Search query is required", body.Message)
}

func TestRouter_SearchMatrix(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	app.provider.EXPECT().GetListing(gomock.Any(), tmdb.Search("matrix", 1)).Return(&tmdb.ListingPage{
		Results: []tmdb.Movie{{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2}},
	}, nil)
	app.provider.EXPECT().GetDetails(gomock.Any(), 603).Return(&tmdb.Movie{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2}, nil)
	app.provider.EXPECT().GetCredits(gomock.Any(), 603).Return(&tmdb.Credits{}, nil)
	app.provider.EXPECT().GetVideos(gomock.Any(), 603).Return(&tmdb.Videos{}, nil)

	resp := app.do(t, http.MethodGet, "/api/movies/search?q=matrix", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var movies []response.MovieResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, 1999, movies[0].Year)
	assert.Equal(t, "8.2", movies[0].Rating)
}

func TestRouter_MovieNotFound(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	notFound := &tmdb.Error{Op: "details", StatusCode: 404, Err: tmdb.ErrNotFound}
	app.provider.EXPECT().GetDetails(gomock.Any(), 999999).Return(nil, notFound)
	app.provider.EXPECT().GetCredits(gomock.Any(), 999999).Return(nil, notFound)
	app.provider.EXPECT().GetVideos(gomock.Any(), 999999).Return(nil, notFound)

	resp := app.do(t, http.MethodGet, "/api/movies/999999", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{"message": "Movie not found"}, body)
}

func TestRouter_StaticRoutesBeforeID(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	app.provider.EXPECT().GetListing(gomock.Any(), tmdb.Trending(1)).Return(&tmdb.ListingPage{}, nil)

	resp := app.do(t, http.MethodGet, "/api/movies/trending", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_WatchlistMissingUserID(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	resp := app.do(t, http.MethodPost, "/api/watchlist", `{"movieId": 5}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body utils.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{"userId": "This field is required"}, body.Errors)
}

func TestRouter_WatchlistDeleteIsIdempotent(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	app.watchlist.EXPECT().Remove(gomock.Any(), 1, 999).Return(false, nil)

	resp := app.do(t, http.MethodDelete, "/api/watchlist/1/999", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	resp := app.do(t, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestRouter_HealthDatabaseDown(t *testing.T) {
	app := newTestApp(t, fakePinger{err: errors.New("connection refused")})

	resp := app.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
