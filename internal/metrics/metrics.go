// Package metrics — счётчики prometheus для рендеров и кеша. Метрики
// отдаются наружу через /metrics (promhttp в маршрутах приложения).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallpaper_renders_total",
		Help: "Total number of rendered wallpapers.",
	}, []string{"mode", "style", "format"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wallpaper_render_duration_seconds",
		Help:    "Wallpaper render duration, layout plus encoding.",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode", "style", "format"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallpaper_cache_hits_total",
		Help: "Image cache hits.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallpaper_cache_misses_total",
		Help: "Image cache misses.",
	})
)

// ObserveRender фиксирует завершённый рендер.
func ObserveRender(mode, style, format string, d time.Duration) {
	rendersTotal.WithLabelValues(mode, style, format).Inc()
	renderDuration.WithLabelValues(mode, style, format).Observe(d.Seconds())
}

// CacheHit фиксирует попадание в кеш изображений.
func CacheHit() { cacheHits.Inc() }

// CacheMiss фиксирует промах кеша изображений.
func CacheMiss() { cacheMisses.Inc() }
