// Package wallpapergenerator предоставляет маршруты для основного приложения.
package wallpapergenerator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/wallpaper-generator/internal/http/handlers/health"
	"github.com/magabrotheeeer/wallpaper-generator/internal/http/handlers/presets"
	"github.com/magabrotheeeer/wallpaper-generator/internal/http/handlers/wallpaper/month"
	"github.com/magabrotheeeer/wallpaper-generator/internal/http/handlers/wallpaper/year"
	"github.com/magabrotheeeer/wallpaper-generator/internal/http/middlewarectx"
	wallpaperservice "github.com/magabrotheeeer/wallpaper-generator/internal/services/wallpaper"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, wallpaperService *wallpaperservice.Service, baseURL string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/wallpaper", year.New(logger, wallpaperService).ServeHTTP)
		r.Get("/wallpaper/month", month.New(logger, wallpaperService).ServeHTTP)
		r.Get("/presets", presets.New(logger, baseURL).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
