package repository

import (
	"context"
	"fmt"
	"strings"

	"streamview/internal/data/entity"
	"streamview/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*entity.MovieWithGenres, error)

	// Join queries, every movie carries its genres
	FindAllWithGenres(ctx context.Context) ([]*entity.MovieWithGenres, error)
	FindByGenreSlug(ctx context.Context, slug string) ([]*entity.MovieWithGenres, error)
	SearchByTitle(ctx context.Context, query string) ([]*entity.MovieWithGenres, error)
	FindByFlags(ctx context.Context, featured, trending bool) ([]*entity.MovieWithGenres, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieGenreSelect = `
	SELECT m.id, m.tmdb_id, m.title, m.description, m.poster_url, m.backdrop_url, m.video_url,
	       m.year, m.duration, m.rating, m.director, m."cast", m.featured, m.trending,
	       m.created_at, g.id, g.name, g.slug
	FROM movies m
	LEFT JOIN movie_genres mg ON mg.movie_id = m.id
	LEFT JOIN genres g ON g.id = mg.genre_id
`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (tmdb_id, title, description, poster_url, backdrop_url, video_url,
		                    year, duration, rating, director, "cast", featured, trending)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	cast := movie.Cast
	if cast == nil {
		cast = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		movie.TMDBID,
		movie.Title,
		movie.Description,
		movie.PosterURL,
		movie.BackdropURL,
		movie.VideoURL,
		movie.Year,
		movie.Duration,
		movie.Rating,
		movie.Director,
		cast,
		movie.Featured,
		movie.Trending,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", classifyPgError(err))
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM movies WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.MovieWithGenres, error) {
	movies, err := r.queryMovies(ctx, movieGenreSelect+` WHERE m.id = $1 ORDER BY m.id, g.name`, id)
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	if len(movies) == 0 {
		return nil, nil
	}

	return movies[0], nil
}

func (r *movieRepository) FindAllWithGenres(ctx context.Context) ([]*entity.MovieWithGenres, error) {
	movies, err := r.queryMovies(ctx, movieGenreSelect+` ORDER BY m.id, g.name`)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}

func (r *movieRepository) FindByGenreSlug(ctx context.Context, slug string) ([]*entity.MovieWithGenres, error) {
	// the subquery filters movies, the outer join still attaches every genre of a match
	query := movieGenreSelect + `
		WHERE m.id IN (
			SELECT mg2.movie_id
			FROM movie_genres mg2
			INNER JOIN genres g2 ON g2.id = mg2.genre_id
			WHERE g2.slug = $1
		)
		ORDER BY m.id, g.name
	`

	movies, err := r.queryMovies(ctx, query, slug)
	if err != nil {
		r.log.Error("Failed to find movies by genre",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find movies by genre %s: %w", slug, err)
	}

	return movies, nil
}

func (r *movieRepository) SearchByTitle(ctx context.Context, query string) ([]*entity.MovieWithGenres, error) {
	sql := movieGenreSelect + ` WHERE m.title ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY m.id, g.name`

	movies, err := r.queryMovies(ctx, sql, escapeLike(query))
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	return movies, nil
}

// FindByFlags keeps movies carrying every flag set to true; a false flag does
// not filter.
func (r *movieRepository) FindByFlags(ctx context.Context, featured, trending bool) ([]*entity.MovieWithGenres, error) {
	query := movieGenreSelect + `
		WHERE ($1 = FALSE OR m.featured) AND ($2 = FALSE OR m.trending)
		ORDER BY m.created_at DESC, m.id, g.name
	`

	movies, err := r.queryMovies(ctx, query, featured, trending)
	if err != nil {
		r.log.Error("Failed to find flagged movies",
			zap.Error(err),
			zap.Bool("featured", featured),
			zap.Bool("trending", trending),
		)
		return nil, fmt.Errorf("find flagged movies: %w", err)
	}

	return movies, nil
}

// queryMovies runs a movieGenreSelect based query and groups the join rows.
func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*entity.MovieWithGenres, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var joined []movieGenreRow
	for rows.Next() {
		row, err := scanMovieGenreRow(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		joined = append(joined, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return groupMovieGenreRows(joined), nil
}

// movieGenreRow is one row of movies LEFT JOIN movie_genres LEFT JOIN genres.
// The genre columns are NULL for a movie without genres.
type movieGenreRow struct {
	Movie     entity.Movie
	GenreID   *int
	GenreName *string
	GenreSlug *string
}

func scanMovieGenreRow(row pgx.Row, extra ...any) (movieGenreRow, error) {
	var r movieGenreRow
	dest := []any{
		&r.Movie.ID,
		&r.Movie.TMDBID,
		&r.Movie.Title,
		&r.Movie.Description,
		&r.Movie.PosterURL,
		&r.Movie.BackdropURL,
		&r.Movie.VideoURL,
		&r.Movie.Year,
		&r.Movie.Duration,
		&r.Movie.Rating,
		&r.Movie.Director,
		&r.Movie.Cast,
		&r.Movie.Featured,
		&r.Movie.Trending,
		&r.Movie.CreatedAt,
		&r.GenreID,
		&r.GenreName,
		&r.GenreSlug,
	}
	err := row.Scan(append(dest, extra...)...)
	return r, err
}

// groupMovieGenreRows folds join rows into movies, keeping the order in which
// movies first appear and attaching each genre id at most once per movie.
func groupMovieGenreRows(rows []movieGenreRow) []*entity.MovieWithGenres {
	movies := make([]*entity.MovieWithGenres, 0)
	byID := make(map[int]*entity.MovieWithGenres)
	seen := make(map[int]map[int]struct{})

	for _, row := range rows {
		movie, ok := byID[row.Movie.ID]
		if !ok {
			movie = &entity.MovieWithGenres{Movie: row.Movie, Genres: []entity.Genre{}}
			if movie.Cast == nil {
				movie.Cast = []string{}
			}
			byID[row.Movie.ID] = movie
			seen[row.Movie.ID] = make(map[int]struct{})
			movies = append(movies, movie)
		}

		if row.GenreID == nil {
			continue
		}
		if _, dup := seen[row.Movie.ID][*row.GenreID]; dup {
			continue
		}
		seen[row.Movie.ID][*row.GenreID] = struct{}{}

		genre := entity.Genre{BaseSimple: entity.BaseSimple{ID: *row.GenreID}}
		if row.GenreName != nil {
			genre.Name = *row.GenreName
		}
		if row.GenreSlug != nil {
			genre.Slug = *row.GenreSlug
		}
		movie.Genres = append(movie.Genres, genre)
	}

	return movies
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
