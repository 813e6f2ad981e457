package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"streamview/internal/dto/request"
	"streamview/internal/dto/response"
	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMovieService struct {
	movies     []response.MovieResponse
	movie      *response.MovieResponse
	details    *response.MovieDetailsResponse
	err        error
	lastPage   int
	lastUserID *int
	lastQuery  string
	lastID     int
}

func (f *fakeMovieService) ListPopular(_ context.Context, page int, userID *int) ([]response.MovieResponse, error) {
	f.lastPage = page
	f.lastUserID = userID
	return f.movies, f.err
}

func (f *fakeMovieService) Featured(_ context.Context) (*response.MovieResponse, error) {
	return f.movie, f.err
}

func (f *fakeMovieService) Trending(_ context.Context) ([]response.MovieResponse, error) {
	return f.movies, f.err
}

func (f *fakeMovieService) Search(_ context.Context, query string) ([]response.MovieResponse, error) {
	f.lastQuery = query
	return f.movies, f.err
}

func (f *fakeMovieService) GetMovie(_ context.Context, id int, userID *int) (*response.MovieResponse, error) {
	f.lastID = id
	f.lastUserID = userID
	return f.movie, f.err
}

func (f *fakeMovieService) GetMovieDetails(_ context.Context, id int) (*response.MovieDetailsResponse, error) {
	f.lastID = id
	return f.details, f.err
}

func (f *fakeMovieService) CreateMovie(_ context.Context, _ *request.MovieRequest) (*response.MovieResponse, error) {
	return f.movie, f.err
}

type fakeWatchlistService struct {
	entry      *response.WatchlistEntryResponse
	err        error
	removeUser int
	removeID   int
}

func (f *fakeWatchlistService) GetWatchlist(_ context.Context, _ int) ([]response.MovieResponse, error) {
	return []response.MovieResponse{}, f.err
}

func (f *fakeWatchlistService) AddToWatchlist(_ context.Context, _ *request.WatchlistRequest) (*response.WatchlistEntryResponse, error) {
	return f.entry, f.err
}

func (f *fakeWatchlistService) RemoveFromWatchlist(_ context.Context, userID, movieID int) error {
	f.removeUser = userID
	f.removeID = movieID
	return f.err
}

type fakeLibraryService struct {
	lastFilter usecase.LibraryFilter
	calls      int
}

func (f *fakeLibraryService) ListMovies(_ context.Context, filter usecase.LibraryFilter) ([]response.MovieResponse, error) {
	f.lastFilter = filter
	f.calls++
	return []response.MovieResponse{}, nil
}

func (f *fakeLibraryService) GetMovie(_ context.Context, _ int) (*response.MovieResponse, error) {
	return nil, utils.NotFoundError("Movie not found")
}

func (f *fakeLibraryService) ListGenres(_ context.Context) ([]response.GenreResponse, error) {
	return []response.GenreResponse{}, nil
}

func serve(t *testing.T, register func(r chi.Router), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	register(r)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestMovieHandler_GetMovies(t *testing.T) {
	service := &fakeMovieService{movies: []response.MovieResponse{{ID: 1, Title: "One"}}}
	h := NewMovieHandler(service, zap.NewNop())

	rec := serve(t, func(r chi.Router) { r.Get("/api/movies", h.GetMovies) }, http.MethodGet, "/api/movies?page=3&userId=7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, 3, service.lastPage)
	require.NotNil(t, service.lastUserID)
	assert.Equal(t, 7, *service.lastUserID)

	var movies []response.MovieResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&movies))
	assert.Len(t, movies, 1)
}

func TestMovieHandler_GetMovies_InvalidUserID(t *testing.T) {
	h := NewMovieHandler(&fakeMovieService{}, zap.NewNop())

	rec := serve(t, func(r chi.Router) { r.Get("/api/movies", h.GetMovies) }, http.MethodGet, "/api/movies?userId=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieHandler_GetMovieByID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "non numeric id", target: "/api/movies/abc", wantStatus: http.StatusBadRequest, wantMsg: "Invalid movie ID"},
		{name: "negative id", target: "/api/movies/-4", wantStatus: http.StatusBadRequest, wantMsg: "Invalid movie ID"},
		{
			name:       "not found",
			target:     "/api/movies/999999",
			serviceErr: utils.NotFoundError("Movie not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Movie not found",
		},
		{
			name:       "upstream failure is a plain 500",
			target:     "/api/movies/1",
			serviceErr: utils.UpstreamError("Failed to fetch movie", errors.New("tmdb details: status 503")),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to fetch movie",
		},
		{
			name:       "unclassified error",
			target:     "/api/movies/1",
			serviceErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMovieHandler(&fakeMovieService{err: tt.serviceErr}, zap.NewNop())

			rec := serve(t, func(r chi.Router) { r.Get("/api/movies/{id}", h.GetMovieByID) }, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec).Message)
		})
	}
}

func TestMovieHandler_SearchMovies_ValidationDetails(t *testing.T) {
	service := &fakeMovieService{err: utils.ValidationError("Search query is required", map[string]string{"q": "This field is required"})}
	h := NewMovieHandler(service, zap.NewNop())

	rec := serve(t, func(r chi.Router) { r.Get("/api/movies/search", h.SearchMovies) }, http.MethodGet, "/api/movies/search", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Search query is required", body.Message)
	assert.Equal(t, map[string]any{"q": "This field is required"}, body.Errors)
}

func TestMovieHandler_CreateMovie_BadBody(t *testing.T) {
	h := NewMovieHandler(&fakeMovieService{}, zap.NewNop())

	rec := serve(t, func(r chi.Router) { r.Post("/api/movies", h.CreateMovie) }, http.MethodPost, "/api/movies", "{")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, rec).Message)
}

func TestWatchlistHandler_RemoveFromWatchlist(t *testing.T) {
	service := &fakeWatchlistService{}
	h := NewWatchlistHandler(service, zap.NewNop())

	rec := serve(t, func(r chi.Router) {
		r.Delete("/api/watchlist/{userId}/{movieId}", h.RemoveFromWatchlist)
	}, http.MethodDelete, "/api/watchlist/1/999", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 1, service.removeUser)
	assert.Equal(t, 999, service.removeID)
}

func TestWatchlistHandler_AddToWatchlist(t *testing.T) {
	service := &fakeWatchlistService{entry: &response.WatchlistEntryResponse{ID: 3, UserID: 1, MovieID: 5}}
	h := NewWatchlistHandler(service, zap.NewNop())

	rec := serve(t, func(r chi.Router) { r.Post("/api/watchlist", h.AddToWatchlist) },
		http.MethodPost, "/api/watchlist", `{"userId":1,"movieId":5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var entry response.WatchlistEntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, 3, entry.ID)
}

func TestOptionalUserID(t *testing.T) {
	tests := []struct {
		query  string
		want   *int
		wantOK bool
	}{
		{query: "", want: nil, wantOK: true},
		{query: "?userId=4", want: func() *int { v := 4; return &v }(), wantOK: true},
		{query: "?userId=0", want: nil, wantOK: false},
		{query: "?userId=x", want: nil, wantOK: false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/movies"+tt.query, nil)
		got, ok := optionalUserID(req)
		assert.Equal(t, tt.wantOK, ok, tt.query)
		assert.Equal(t, tt.want, got, tt.query)
	}
}

func TestLibraryHandler_GetMovies_Filters(t *testing.T) {
	service := &fakeLibraryService{}
	h := NewLibraryHandler(service, zap.NewNop())
	register := func(r chi.Router) { r.Get("/api/library/movies", h.GetMovies) }

	rec := serve(t, register, http.MethodGet, "/api/library/movies?featured=true&trending=0&genre=drama", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.LibraryFilter{GenreSlug: "drama", Featured: true}, service.lastFilter)

	rec = serve(t, register, http.MethodGet, "/api/library/movies?trending=maybe", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid filter", body.Message)
	assert.Equal(t, map[string]any{"trending": "Must be true or false"}, body.Errors)
	assert.Equal(t, 1, service.calls)
}
