package adaptor

import (
	"errors"
	"net/http"

	"streamview/internal/usecase"
	"streamview/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie     *MovieHandler
	Genre     *GenreHandler
	Series    *SeriesHandler
	Watchlist *WatchlistHandler
	Library   *LibraryHandler
	User      *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:     NewMovieHandler(service.Movie, log),
		Genre:     NewGenreHandler(service.Genre, log),
		Series:    NewSeriesHandler(service.Series, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
		Library:   NewLibraryHandler(service.Library, log),
		User:      NewUserHandler(service.User, log),
	}
}

// handleServiceError maps a service error to its response. Server-side
// failures are logged with their cause and answered with the generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("code", string(appErr.Code)),
		)
	} else {
		log.Warn(operation+" rejected",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
		)
	}

	utils.ResponseError(w, status, appErr.Message, appErr.Details)
}

// optionalUserID reads ?userId=. ok is false when the parameter is present
// but not a positive integer.
func optionalUserID(r *http.Request) (userID *int, ok bool) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		return nil, true
	}
	id, valid := utils.ParseID(raw)
	if !valid {
		return nil, false
	}
	return &id, true
}
