// Package tmdb is a typed client for The Movie Database v3 API.
//
// Every decoded payload is validated before it is returned: malformed
// records are dropped from lists and rejected for single-record calls, so
// callers only ever see well-formed Movie, Credits and Videos values.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"streamview/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL        = "https://api.themoviedb.org/3"
	defaultTimeout        = 10 * time.Second
	defaultMaxConcurrency = 10
)

// Client talks to the provider. It is safe for concurrent use.
type Client struct {
	apiKey   string
	baseURL  string
	language string
	http     *http.Client
	limiter  *rate.Limiter
	inflight *semaphore.Weighted
	log      *zap.Logger
}

// NewClient builds a client from configuration. Outbound calls are paced by
// a token bucket and capped at MaxConcurrency in flight.
func NewClient(cfg utils.TMDBConfig, log *zap.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = defaultMaxConcurrency
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = maxConcurrency
	}

	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		language: cfg.Language,
		http:     &http.Client{Timeout: timeout},
		limiter:  rate.NewLimiter(limit, burst),
		inflight: semaphore.NewWeighted(int64(maxConcurrency)),
		log:      log.With(zap.String("component", "tmdb")),
	}
}

// GetListing fetches one page of the list endpoint selected by q.Kind.
func (c *Client) GetListing(ctx context.Context, q ListingQuery) (*ListingPage, error) {
	path, params, err := q.endpoint()
	if err != nil {
		return nil, err
	}

	op := "listing:" + string(q.Kind)

	var page ListingPage
	if err := c.get(ctx, op, path, params, &page); err != nil {
		return nil, err
	}

	page.Results = keepValid(page.Results, c.log.With(zap.String("op", op)))
	return &page, nil
}

// GetDetails fetches the full record of one movie.
func (c *Client) GetDetails(ctx context.Context, id int) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "details", fmt.Sprintf("/movie/%d", id), nil, &movie); err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(movie); len(errs) > 0 {
		return nil, &Error{
			Op:  "details",
			Err: fmt.Errorf("%w: %s", ErrMalformed, utils.FormatValidationErrors(errs)),
		}
	}

	return &movie, nil
}

func (c *Client) GetCredits(ctx context.Context, id int) (*Credits, error) {
	var credits Credits
	if err := c.get(ctx, "credits", fmt.Sprintf("/movie/%d/credits", id), nil, &credits); err != nil {
		return nil, err
	}

	credits.Cast = keepValid(credits.Cast, c.log)
	credits.Crew = keepValid(credits.Crew, c.log)
	return &credits, nil
}

func (c *Client) GetVideos(ctx context.Context, id int) (*Videos, error) {
	var videos Videos
	if err := c.get(ctx, "videos", fmt.Sprintf("/movie/%d/videos", id), nil, &videos); err != nil {
		return nil, err
	}

	videos.Results = keepValid(videos.Results, c.log)
	return &videos, nil
}

func (c *Client) GetSimilar(ctx context.Context, id, page int) (*ListingPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(page, 1)))

	var listing ListingPage
	if err := c.get(ctx, "similar", fmt.Sprintf("/movie/%d/similar", id), params, &listing); err != nil {
		return nil, err
	}

	listing.Results = keepValid(listing.Results, c.log)
	return &listing, nil
}

// GetGenres returns the provider's movie genre list.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	var list genreList
	if err := c.get(ctx, "genres", "/genre/movie/list", nil, &list); err != nil {
		return nil, err
	}

	return keepValid(list.Genres, c.log), nil
}

// get performs one GET and decodes the JSON body into dest. There are no retries.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Op: op, Err: err}
	}
	if err := c.inflight.Acquire(ctx, 1); err != nil {
		return &Error{Op: op, Err: err}
	}
	defer c.inflight.Release(1)

	req, err := c.newRequest(ctx, path, params)
	if err != nil {
		return &Error{Op: op, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Provider request failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrUpstream, err)}
	}
	defer resp.Body.Close()

	c.log.Debug("Provider request",
		zap.String("op", op),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrNotFound}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: ErrUpstream}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	return nil
}

// newRequest attaches the credential and the configured language. v4 read
// tokens go in the Authorization header, v3 keys in the api_key query parameter.
func (c *Client) newRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	if params == nil {
		params = url.Values{}
	}

	bearer := isReadAccessToken(c.apiKey)
	if !bearer {
		params.Set("api_key", c.apiKey)
	}
	if c.language != "" {
		params.Set("language", c.language)
	}

	reqURL := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if bearer {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

func isReadAccessToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

// keepValid drops entries that fail their validate tags.
func keepValid[T any](items []T, log *zap.Logger) []T {
	valid := make([]T, 0, len(items))
	for _, item := range items {
		if errs := utils.ValidateStruct(item); len(errs) > 0 {
			log.Warn("Dropping malformed provider record",
				zap.String("errors", utils.FormatValidationErrors(errs)),
			)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}
