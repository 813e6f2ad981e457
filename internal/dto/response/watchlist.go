package response

import (
	"time"

	"streamview/internal/data/entity"
)

type WatchlistEntryResponse struct {
	ID      int       `json:"id"`
	UserID  int       `json:"userId"`
	MovieID int       `json:"movieId"`
	AddedAt time.Time `json:"addedAt"`
}

func WatchlistEntryToResponse(entry *entity.WatchlistEntry) WatchlistEntryResponse {
	return WatchlistEntryResponse{
		ID:      entry.ID,
		UserID:  entry.UserID,
		MovieID: entry.MovieID,
		AddedAt: entry.AddedAt,
	}
}
