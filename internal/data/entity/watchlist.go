package entity

import (
	"time"
)

type WatchlistEntry struct {
	BaseSimple
	UserID  int       `db:"user_id"`
	MovieID int       `db:"movie_id"`
	AddedAt time.Time `db:"added_at"`
}
