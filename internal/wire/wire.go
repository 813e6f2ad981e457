package wire

import (
	"context"
	"net/http"
	"time"

	"streamview/internal/adaptor"
	"streamview/internal/data/repository"
	"streamview/internal/usecase"
	"streamview/pkg/middleware"
	"streamview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports database liveness for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	provider usecase.MovieProvider,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, provider, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, db, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, db Pinger, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, request id first so every log line carries it
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	wireMovie(r, handler.Movie)
	wireGenre(r, handler.Genre)
	wireSeries(r, handler.Series)
	wireWatchlist(r, handler.Watchlist)
	wireLibrary(r, handler.Library)
	wireUser(r, handler.User)

	r.Get("/health", healthHandler(db, logger))

	return r
}

func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseError(w, http.StatusServiceUnavailable, "Database unavailable", nil)
			return
		}

		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	}
}
