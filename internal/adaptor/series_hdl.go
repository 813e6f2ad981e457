package adaptor

import (
	"net/http"

	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeriesHandler struct {
	service usecase.SeriesService
	log     *zap.Logger
}

func NewSeriesHandler(service usecase.SeriesService, log *zap.Logger) *SeriesHandler {
	return &SeriesHandler{
		service: service,
		log:     log.With(zap.String("handler", "series")),
	}
}

// GetSeries handles GET /api/series
func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.ListSeries(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get series")
		return
	}

	utils.ResponseSuccess(w, series)
}

// GetSeriesDetails handles GET /api/series/{id}/details
func (h *SeriesHandler) GetSeriesDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid series ID", nil)
		return
	}

	details, err := h.service.GetSeriesDetails(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get series details")
		return
	}

	utils.ResponseSuccess(w, details)
}
