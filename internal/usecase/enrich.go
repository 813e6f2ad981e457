package usecase

import (
	"context"
	"fmt"
	"sync"

	"streamview/internal/dto/response"
	"streamview/internal/tmdb"

	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// EnrichOutcome tells whether a movie was normalized with its enrichment
// calls or degraded to its summary record.
type EnrichOutcome string

const (
	EnrichFull    EnrichOutcome = "full"
	EnrichPartial EnrichOutcome = "partial"
)

// EnrichResult is the per-item result of a fan-out. Err is set for partial
// results and holds the enrichment failure.
type EnrichResult struct {
	Movie   response.MovieResponse
	Outcome EnrichOutcome
	Err     error
}

// Enrichment holds the three per-item calls of a full normalization.
type Enrichment struct {
	Details *tmdb.Movie
	Credits *tmdb.Credits
	Videos  *tmdb.Videos
}

// Normalize turns a complete enrichment into the canonical movie.
func (e *Enrichment) Normalize(images tmdb.Images) response.MovieResponse {
	return response.MovieFromProvider(*e.Details, e.Credits, e.Videos, images, nil)
}

type Enricher struct {
	provider       MovieProvider
	images         tmdb.Images
	maxConcurrency int
	log            *zap.Logger
}

func NewEnricher(provider MovieProvider, images tmdb.Images, maxConcurrency int, log *zap.Logger) *Enricher {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Enricher{
		provider:       provider,
		images:         images,
		maxConcurrency: maxConcurrency,
		log:            log.With(zap.String("component", "enricher")),
	}
}

// Fetch issues the details, credits and videos calls for one id concurrently.
// Any failure fails the whole enrichment; the other calls still run to completion.
func (e *Enricher) Fetch(ctx context.Context, id int) (*Enrichment, error) {
	var en Enrichment

	p := pool.New().WithErrors()
	p.Go(func() error {
		details, err := e.provider.GetDetails(ctx, id)
		if err != nil {
			return fmt.Errorf("details %d: %w", id, err)
		}
		en.Details = details
		return nil
	})
	p.Go(func() error {
		credits, err := e.provider.GetCredits(ctx, id)
		if err != nil {
			return fmt.Errorf("credits %d: %w", id, err)
		}
		en.Credits = credits
		return nil
	})
	p.Go(func() error {
		videos, err := e.provider.GetVideos(ctx, id)
		if err != nil {
			return fmt.Errorf("videos %d: %w", id, err)
		}
		en.Videos = videos
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return &en, nil
}

// EnrichAll enriches every summary record. The result has one entry per
// input, in input order; an item whose enrichment fails is normalized from
// its summary record alone and never fails the batch.
func (e *Enricher) EnrichAll(ctx context.Context, items []tmdb.Movie) []EnrichResult {
	// only degraded items need the genre list, and at most once per batch
	genreNames := sync.OnceValue(func() map[int]string {
		genres, err := e.provider.GetGenres(ctx)
		if err != nil {
			e.log.Warn("Failed to load genre list for degraded items", zap.Error(err))
			return nil
		}
		names := make(map[int]string, len(genres))
		for _, g := range genres {
			names[g.ID] = g.Name
		}
		return names
	})

	mapper := iter.Mapper[tmdb.Movie, EnrichResult]{MaxGoroutines: e.maxConcurrency}
	results := mapper.Map(items, func(item *tmdb.Movie) EnrichResult {
		en, err := e.Fetch(ctx, item.ID)
		if err == nil {
			return EnrichResult{Movie: en.Normalize(e.images), Outcome: EnrichFull}
		}

		e.log.Warn("Enrichment failed, using summary record",
			zap.Int("movie_id", item.ID),
			zap.Error(err),
		)

		var names map[int]string
		if len(item.Genres) == 0 && len(item.GenreIDs) > 0 {
			names = genreNames()
		}

		return EnrichResult{
			Movie:   response.MovieFromProvider(*item, nil, nil, e.images, names),
			Outcome: EnrichPartial,
			Err:     err,
		}
	})

	partial := 0
	for _, r := range results {
		if r.Outcome == EnrichPartial {
			partial++
		}
	}
	e.log.Debug("Batch enriched",
		zap.Int("count", len(results)),
		zap.Int("partial", partial),
	)

	return results
}

// Movies extracts the normalized movies, optionally applying mark to each.
func Movies(results []EnrichResult, mark func(*response.MovieResponse)) []response.MovieResponse {
	movies := make([]response.MovieResponse, len(results))
	for i := range results {
		movies[i] = results[i].Movie
		if mark != nil {
			mark(&movies[i])
		}
	}
	return movies
}
