package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"dogbreed-service/internal/breeds/catalog"
	breedHnd "dogbreed-service/internal/breeds/handler"
	"dogbreed-service/internal/config"
	"dogbreed-service/internal/middleware"
	"dogbreed-service/server/http/handlers"
)

func NewRouter(cfg config.Config, catalogs *catalog.Holder, aliases catalog.AliasTable, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> rate limit -> body limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPM))
	r.Use(middleware.LimitBytes(cfg.MaxBodyBytes()))

	r.Get("/health", handlers.Health(catalogs))
	r.Handle("/metrics", promhttp.Handler())

	h := breedHnd.New(catalogs, aliases, logger)
	r.Route("/breeds", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Post("/recommend", h.Recommend)
		r.Get("/compare", h.Compare)
		r.Get("/popular", h.Popular)
	})

	return r
}
