package repository

import (
	"context"
	"fmt"
	"strings"

	"streamview/internal/data/entity"
	"streamview/pkg/database"

	"go.uber.org/zap"
)

type MovieGenreRepository interface {
	CreateBatch(ctx context.Context, movieGenres []*entity.MovieGenre) error
}

type movieGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieGenreRepository(db database.PgxIface, log *zap.Logger) MovieGenreRepository {
	return &movieGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_genre")),
	}
}

// CreateBatch links a movie to its genres in a single INSERT statement.
func (r *movieGenreRepository) CreateBatch(ctx context.Context, movieGenres []*entity.MovieGenre) error {
	if len(movieGenres) == 0 {
		return nil
	}

	query, args := buildMovieGenreInsert(movieGenres)

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create batch movie_genres",
			zap.Error(err),
			zap.Int("count", len(movieGenres)),
		)
		return fmt.Errorf("create batch movie_genres: %w", classifyPgError(err))
	}

	return nil
}

func buildMovieGenreInsert(movieGenres []*entity.MovieGenre) (string, []any) {
	var b strings.Builder
	b.WriteString(`INSERT INTO movie_genres (movie_id, genre_id) VALUES `)

	args := make([]any, 0, len(movieGenres)*2)
	for i, mg := range movieGenres {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "($%d, $%d)", i*2+1, i*2+2)
		args = append(args, mg.MovieID, mg.GenreID)
	}

	return b.String(), args
}
