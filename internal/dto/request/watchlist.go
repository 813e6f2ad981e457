package request

// WatchlistRequest uses pointers so a missing field is reported as required
// rather than silently decoded as 0.
type WatchlistRequest struct {
	UserID  *int `json:"userId" validate:"required,gt=0"`
	MovieID *int `json:"movieId" validate:"required,gt=0"`
}
