package request

// MovieRequest creates a locally persisted movie.
type MovieRequest struct {
	TMDBID      *int     `json:"tmdbId,omitempty" validate:"omitempty,gt=0"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required"`
	PosterURL   string   `json:"posterUrl" validate:"required,url"`
	BackdropURL string   `json:"backdropUrl" validate:"required,url"`
	VideoURL    *string  `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Year        int      `json:"year" validate:"required,gte=1888,lte=2100"`
	Duration    int      `json:"duration" validate:"required,min=1,max=999"`
	Rating      string   `json:"rating" validate:"required,numeric"`
	Director    string   `json:"director" validate:"required"`
	Cast        []string `json:"cast" validate:"required,dive,required"`
	Featured    bool     `json:"featured"`
	Trending    bool     `json:"trending"`
	GenreIDs    []int    `json:"genreIds,omitempty" validate:"omitempty,dive,gt=0"`
}
