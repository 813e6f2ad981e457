package response

import (
	"math"
	"strconv"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/tmdb"
)

const (
	PlaceholderDescription = "No description available."
	UnknownDirector        = "Unknown"
	DefaultDuration        = 120
	MaxCast                = 10

	youtubeEmbedBase = "https://www.youtube.com/embed/"
)

// MovieResponse is the canonical movie shape served to the front end, for
// provider-backed and locally persisted movies alike.
type MovieResponse struct {
	ID          int               `json:"id"`
	TMDBID      *int              `json:"tmdbId,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	PosterURL   string            `json:"posterUrl"`
	BackdropURL string            `json:"backdropUrl"`
	VideoURL    *string           `json:"videoUrl"`
	Year        int               `json:"year"`
	Duration    int               `json:"duration"`
	Rating      string            `json:"rating"`
	Director    string            `json:"director"`
	Cast        []string          `json:"cast"`
	Featured    bool              `json:"featured"`
	Trending    bool              `json:"trending"`
	IsSeries    bool              `json:"isSeries,omitempty"`
	InWatchlist *bool             `json:"inWatchlist,omitempty"`
	Genres      []GenreResponse   `json:"genres"`
	Trailers    []TrailerResponse `json:"trailers"`
}

type TrailerResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	EmbedURL string `json:"embedUrl"`
}

// MovieDetailsResponse is the body of GET /api/movies/{id}/details.
type MovieDetailsResponse struct {
	Movie         MovieResponse     `json:"movie"`
	SimilarMovies []MovieResponse   `json:"similarMovies"`
	Trailers      []TrailerResponse `json:"trailers"`
}

// SeriesDetailsResponse is the body of GET /api/series/{id}/details.
type SeriesDetailsResponse struct {
	Series   MovieResponse     `json:"series"`
	Trailers []TrailerResponse `json:"trailers"`
}

// MovieFromProvider normalizes a provider record. credits and videos may be
// nil (summary-only normalization), which never fails. genreNames resolves
// GenreIDs on summary records that carry no embedded genres; it may be nil.
func MovieFromProvider(rec tmdb.Movie, credits *tmdb.Credits, videos *tmdb.Videos, images tmdb.Images, genreNames map[int]string) MovieResponse {
	description := strings.TrimSpace(rec.Overview)
	if description == "" {
		description = PlaceholderDescription
	}

	duration := DefaultDuration
	if rec.Runtime != nil && *rec.Runtime > 0 {
		duration = *rec.Runtime
	}

	movie := MovieResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: description,
		PosterURL:   images.Poster(rec.PosterPath),
		BackdropURL: images.Backdrop(rec.BackdropPath),
		Year:        ParseYear(rec.ReleaseDate),
		Duration:    duration,
		Rating:      FormatRating(rec.VoteAverage),
		Director:    UnknownDirector,
		Cast:        []string{},
		Genres:      providerGenres(rec, genreNames),
		Trailers:    []TrailerResponse{},
	}

	if credits != nil {
		movie.Director = directorOf(credits.Crew)
		movie.Cast = topCast(credits.Cast, MaxCast)
	}

	if videos != nil {
		if trailer := SelectTrailer(videos.Results); trailer != nil {
			url := EmbedURL(trailer.Key)
			movie.VideoURL = &url
		}
		movie.Trailers = TrailerList(videos.Results)
	}

	return movie
}

// MovieFromEntity converts a locally persisted movie with its joined genres.
func MovieFromEntity(m *entity.MovieWithGenres) MovieResponse {
	cast := m.Cast
	if cast == nil {
		cast = []string{}
	}

	genres := make([]GenreResponse, len(m.Genres))
	for i := range m.Genres {
		genres[i] = GenreFromEntity(&m.Genres[i])
	}

	return MovieResponse{
		ID:          m.ID,
		TMDBID:      m.TMDBID,
		Title:       m.Title,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		BackdropURL: m.BackdropURL,
		VideoURL:    m.VideoURL,
		Year:        m.Year,
		Duration:    m.Duration,
		Rating:      NormalizeRating(m.Rating),
		Director:    m.Director,
		Cast:        cast,
		Featured:    m.Featured,
		Trending:    m.Trending,
		Genres:      genres,
		Trailers:    []TrailerResponse{},
	}
}

func MoviesFromEntities(movies []*entity.MovieWithGenres) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieFromEntity(m)
	}
	return out
}

// ParseYear returns the year of a "YYYY" or "YYYY-MM-DD" date, or 0 when the
// string is missing or malformed.
func ParseYear(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 || (len(date) > 4 && date[4] != '-') {
		return 0
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil || year < 1 {
		return 0
	}
	return year
}

// FormatRating renders a rating with exactly one decimal digit.
func FormatRating(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// NormalizeRating re-formats a stored rating string. It is idempotent:
// NormalizeRating(NormalizeRating(s)) == NormalizeRating(s).
func NormalizeRating(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return FormatRating(0)
	}
	return FormatRating(v)
}

// SelectTrailer prefers an official YouTube trailer, then any YouTube trailer.
func SelectTrailer(videos []tmdb.Video) *tmdb.Video {
	var fallback *tmdb.Video
	for i := range videos {
		v := &videos[i]
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		if v.Official {
			return v
		}
		if fallback == nil {
			fallback = v
		}
	}
	return fallback
}

// TrailerList keeps YouTube trailers and teasers in provider order.
func TrailerList(videos []tmdb.Video) []TrailerResponse {
	trailers := make([]TrailerResponse, 0)
	for _, v := range videos {
		if v.Site != "YouTube" || (v.Type != "Trailer" && v.Type != "Teaser") {
			continue
		}
		trailers = append(trailers, TrailerResponse{
			Key:      v.Key,
			Name:     v.Name,
			Type:     v.Type,
			EmbedURL: EmbedURL(v.Key),
		})
	}
	return trailers
}

func EmbedURL(key string) string {
	return youtubeEmbedBase + key
}

func directorOf(crew []tmdb.CrewMember) string {
	for _, member := range crew {
		if member.Job == "Director" {
			return member.Name
		}
	}
	return UnknownDirector
}

func topCast(cast []tmdb.CastMember, n int) []string {
	names := make([]string, 0, min(len(cast), n))
	for _, member := range cast {
		if len(names) == n {
			break
		}
		names = append(names, member.Name)
	}
	return names
}

func providerGenres(rec tmdb.Movie, genreNames map[int]string) []GenreResponse {
	genres := make([]GenreResponse, 0)

	if len(rec.Genres) > 0 {
		for _, g := range rec.Genres {
			genres = append(genres, GenreFromProvider(g))
		}
		return genres
	}

	for _, id := range rec.GenreIDs {
		name, ok := genreNames[id]
		if !ok {
			continue
		}
		genres = append(genres, GenreFromProvider(tmdb.Genre{ID: id, Name: name}))
	}
	return genres
}
