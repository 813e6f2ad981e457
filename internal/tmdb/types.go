package tmdb

// Genre is a provider genre, embedded in details payloads and served by /genre/movie/list.
type Genre struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name"`
}

// Movie is a provider movie record. Listings fill the summary fields and
// GenreIDs; details additionally fill Runtime and Genres.
type Movie struct {
	ID           int     `json:"id" validate:"gt=0"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average" validate:"gte=0,lte=10"`
	Runtime      *int    `json:"runtime,omitempty"`
	Genres       []Genre `json:"genres,omitempty" validate:"omitempty,dive"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// ListingPage is one page of a list endpoint (popular, search, discover, ...).
type ListingPage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type CastMember struct {
	Name      string `json:"name" validate:"required"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	Name       string `json:"name" validate:"required"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type Video struct {
	Key      string `json:"key" validate:"required"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

type Videos struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

type genreList struct {
	Genres []Genre `json:"genres"`
}
