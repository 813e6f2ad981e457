package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListingKind selects a list endpoint.
type ListingKind string

const (
	ListingPopular  ListingKind = "popular"
	ListingTopRated ListingKind = "top_rated"
	ListingTrending ListingKind = "trending"
	ListingByGenre  ListingKind = "by_genre"
	ListingSearch   ListingKind = "search"
)

// ListingQuery describes one listing call. GenreID is used by ListingByGenre
// and Query by ListingSearch.
type ListingQuery struct {
	Kind    ListingKind
	Page    int
	GenreID int
	Query   string
}

func Popular(page int) ListingQuery  { return ListingQuery{Kind: ListingPopular, Page: page} }
func TopRated(page int) ListingQuery { return ListingQuery{Kind: ListingTopRated, Page: page} }
func Trending(page int) ListingQuery { return ListingQuery{Kind: ListingTrending, Page: page} }

func ByGenre(genreID, page int) ListingQuery {
	return ListingQuery{Kind: ListingByGenre, Page: page, GenreID: genreID}
}

func Search(query string, page int) ListingQuery {
	return ListingQuery{Kind: ListingSearch, Page: page, Query: query}
}

func (q ListingQuery) endpoint() (string, url.Values, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(q.Page, 1)))

	switch q.Kind {
	case ListingPopular:
		return "/movie/popular", params, nil
	case ListingTopRated:
		return "/movie/top_rated", params, nil
	case ListingTrending:
		return "/trending/movie/week", params, nil
	case ListingByGenre:
		if q.GenreID < 1 {
			return "", nil, fmt.Errorf("%w: genre id %d", ErrInvalidQuery, q.GenreID)
		}
		params.Set("with_genres", strconv.Itoa(q.GenreID))
		params.Set("sort_by", "popularity.desc")
		return "/discover/movie", params, nil
	case ListingSearch:
		query := strings.TrimSpace(q.Query)
		if query == "" {
			return "", nil, fmt.Errorf("%w: empty search query", ErrInvalidQuery)
		}
		params.Set("query", query)
		return "/search/movie", params, nil
	default:
		return "", nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidQuery, q.Kind)
	}
}
