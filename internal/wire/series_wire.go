package wire

import (
	"streamview/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeries(r chi.Router, seriesHandler *adaptor.SeriesHandler) {
	r.Get("/api/series", seriesHandler.GetSeries)
	r.Get("/api/series/{id}/details", seriesHandler.GetSeriesDetails)
}
