package response

import (
	"regexp"
	"strings"

	"streamview/internal/data/entity"
	"streamview/internal/tmdb"
)

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify lowercases name and replaces each whitespace run with one hyphen.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

func GenreFromProvider(genre tmdb.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
		Slug: Slugify(genre.Name),
	}
}

func GenreFromEntity(genre *entity.Genre) GenreResponse {
	slug := genre.Slug
	if slug == "" {
		slug = Slugify(genre.Name)
	}
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
		Slug: slug,
	}
}

func GenresFromEntities(genres []*entity.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreFromEntity(g)
	}
	return out
}
