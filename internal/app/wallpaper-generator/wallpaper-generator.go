package wallpapergenerator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/wallpaper-generator/internal/cache"
	"github.com/magabrotheeeer/wallpaper-generator/internal/config"
	"github.com/magabrotheeeer/wallpaper-generator/internal/fonts"
	wallpaperservice "github.com/magabrotheeeer/wallpaper-generator/internal/services/wallpaper"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sources := make([]fonts.Source, 0, len(cfg.Fonts.Sources))
	for _, s := range cfg.Fonts.Sources {
		sources = append(sources, fonts.Source{Name: s.Name, URL: s.URL})
	}
	registry, err := fonts.New(sources, cfg.Fonts.FetchTimeout, logger)
	if err != nil {
		return nil, err
	}

	var imageCache wallpaperservice.ImageCache
	if cfg.Cache.Enabled {
		cacheRedis, err := cache.InitServer(ctx, cfg.Cache.RedisConnection)
		if err != nil {
			return nil, err
		}
		imageCache = cacheRedis
	}

	wallpaperService := wallpaperservice.New(logger, registry, imageCache)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, wallpaperService, "http://"+cfg.AddressHTTP)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
