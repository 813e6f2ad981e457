package tmdb

import "strings"

const (
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"

	PosterSize   = "w500"
	BackdropSize = "w1280"
)

// Images turns provider path fragments ("/abc.jpg") into absolute URLs.
type Images struct {
	BaseURL string
}

func NewImages(baseURL string) Images {
	if baseURL == "" {
		baseURL = DefaultImageBaseURL
	}
	return Images{BaseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns "" for an empty path so missing artwork stays empty rather than a broken link.
func (i Images) URL(path, size string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return i.BaseURL + "/" + size + path
}

func (i Images) Poster(path string) string {
	return i.URL(path, PosterSize)
}

func (i Images) Backdrop(path string) string {
	return i.URL(path, BackdropSize)
}
