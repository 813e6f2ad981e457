package repository

import (
	"context"
	"fmt"
	"time"

	"streamview/internal/data/entity"
	"streamview/pkg/database"

	"go.uber.org/zap"
)

type WatchlistRepository interface {
	Add(ctx context.Context, entry *entity.WatchlistEntry) error
	Remove(ctx context.Context, userID, movieID int) (bool, error)
	FindMoviesByUser(ctx context.Context, userID int) ([]*entity.MovieWithGenres, error)
	TMDBIDsInWatchlist(ctx context.Context, userID int, tmdbIDs []int) (map[int]bool, error)
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

// Add inserts the pair; adding an existing pair moves it to the top of the list.
func (r *watchlistRepository) Add(ctx context.Context, entry *entity.WatchlistEntry) error {
	query := `
		INSERT INTO watchlist (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET added_at = NOW()
		RETURNING id, added_at
	`

	err := r.db.QueryRow(ctx, query, entry.UserID, entry.MovieID).Scan(&entry.ID, &entry.AddedAt)
	if err != nil {
		r.log.Error("Failed to add watchlist entry",
			zap.Error(err),
			zap.Int("user_id", entry.UserID),
			zap.Int("movie_id", entry.MovieID),
		)
		return fmt.Errorf("add watchlist entry: %w", classifyPgError(err))
	}

	return nil
}

// Remove deletes the pair and reports whether a row existed.
func (r *watchlistRepository) Remove(ctx context.Context, userID, movieID int) (bool, error) {
	query := `DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to remove watchlist entry",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("movie_id", movieID),
		)
		return false, fmt.Errorf("remove watchlist entry: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *watchlistRepository) FindMoviesByUser(ctx context.Context, userID int) ([]*entity.MovieWithGenres, error) {
	query := `
		SELECT m.id, m.tmdb_id, m.title, m.description, m.poster_url, m.backdrop_url, m.video_url,
		       m.year, m.duration, m.rating, m.director, m."cast", m.featured, m.trending,
		       m.created_at, g.id, g.name, g.slug, w.added_at
		FROM watchlist w
		INNER JOIN movies m ON m.id = w.movie_id
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE w.user_id = $1
		ORDER BY w.added_at DESC, w.id DESC, g.name
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find watchlist",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find watchlist: %w", err)
	}
	defer rows.Close()

	var joined []movieGenreRow
	for rows.Next() {
		var addedAt time.Time
		row, err := scanMovieGenreRow(rows, &addedAt)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		joined = append(joined, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	return groupMovieGenreRows(joined), nil
}

// TMDBIDsInWatchlist reports which provider ids the user has saved, through
// the local movies linked to them. Local movies without a tmdb_id never match.
func (r *watchlistRepository) TMDBIDsInWatchlist(ctx context.Context, userID int, tmdbIDs []int) (map[int]bool, error) {
	result := make(map[int]bool, len(tmdbIDs))
	if len(tmdbIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT m.tmdb_id
		FROM watchlist w
		INNER JOIN movies m ON m.id = w.movie_id
		WHERE w.user_id = $1 AND m.tmdb_id = ANY($2)
	`

	rows, err := r.db.Query(ctx, query, userID, tmdbIDs)
	if err != nil {
		r.log.Error("Failed to check watchlist membership",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("check watchlist membership: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tmdbID int
		if err := rows.Scan(&tmdbID); err != nil {
			return nil, fmt.Errorf("scan watchlist membership: %w", err)
		}
		result[tmdbID] = true
	}

	return result, rows.Err()
}
