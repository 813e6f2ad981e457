package entity

// Movie is a locally seeded catalog entry. TMDBID links it to the provider
// record when one exists; ID is the local serial and never a provider id.
type Movie struct {
	Base
	TMDBID      *int     `db:"tmdb_id"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	PosterURL   string   `db:"poster_url"`
	BackdropURL string   `db:"backdrop_url"`
	VideoURL    *string  `db:"video_url"`
	Year        int      `db:"year"`
	Duration    int      `db:"duration"`
	Rating      string   `db:"rating"`
	Director    string   `db:"director"`
	Cast        []string `db:"cast"`
	Featured    bool     `db:"featured"`
	Trending    bool     `db:"trending"`
}

// MovieWithGenres is a movie joined with its genre rows.
type MovieWithGenres struct {
	Movie
	Genres []Genre
}
