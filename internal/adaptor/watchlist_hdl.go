package adaptor

import (
	"encoding/json"
	"net/http"

	"streamview/internal/dto/request"
	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// GetWatchlist handles GET /api/watchlist/{userId}
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.ParseID(chi.URLParam(r, "userId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movies, err := h.service.GetWatchlist(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// AddToWatchlist handles POST /api/watchlist
func (h *WatchlistHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var req request.WatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	entry, err := h.service.AddToWatchlist(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to watchlist")
		return
	}

	utils.ResponseCreated(w, entry)
}

// RemoveFromWatchlist handles DELETE /api/watchlist/{userId}/{movieId}
func (h *WatchlistHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.ParseID(chi.URLParam(r, "userId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	movieID, ok := utils.ParseID(chi.URLParam(r, "movieId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if err := h.service.RemoveFromWatchlist(r.Context(), userID, movieID); err != nil {
		handleServiceError(w, h.log, err, "remove from watchlist")
		return
	}

	utils.ResponseNoContent(w)
}
