package entity

type MovieGenre struct {
	BaseSimple
	MovieID int `db:"movie_id"`
	GenreID int `db:"genre_id"`
}
