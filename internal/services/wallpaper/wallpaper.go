// Package wallpaper реализует бизнес-логику рендера обоев: снимок даты,
// запуск движка раскладки, выбор бэкенда отрисовки, кодирование и
// опциональный кеш готовых изображений.
package wallpaper

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
	"github.com/magabrotheeeer/wallpaper-generator/internal/fonts"
	"github.com/magabrotheeeer/wallpaper-generator/internal/lib/sl"
	"github.com/magabrotheeeer/wallpaper-generator/internal/metrics"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render/raster"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render/svgx"
)

// Format — формат выходного изображения.
type Format string

const (
	// FormatPNG — растровый вывод, формат по умолчанию.
	FormatPNG Format = "png"
	// FormatSVG — векторный вывод через svgx-бэкенд.
	FormatSVG Format = "svg"
)

// NormalizeFormat возвращает известный формат, всё нераспознанное — PNG.
func NormalizeFormat(s string) Format {
	if Format(s) == FormatSVG {
		return FormatSVG
	}
	return FormatPNG
}

// ContentType возвращает MIME-тип формата.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ImageCache — кеш готовых изображений; nil-реализация допустима.
type ImageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

// Result — закодированное изображение с его MIME-типом.
type Result struct {
	Data        []byte
	ContentType string
}

// Service выполняет рендеры. Сам рендер — чистое вычисление без общего
// изменяемого состояния, поэтому запросы обслуживаются параллельно без
// блокировок; единственная точка внешнего ввода-вывода — кеш.
type Service struct {
	log   *slog.Logger
	fonts *fonts.Registry
	cache ImageCache
	now   func() calendar.Snapshot
}

// New создаёт сервис; cache может быть nil — тогда каждый запрос
// рендерится заново.
func New(log *slog.Logger, reg *fonts.Registry, cache ImageCache) *Service {
	return &Service{
		log:   log,
		fonts: reg,
		cache: cache,
		now:   calendar.Now,
	}
}

// Render рендерит изображение для режима и параметров. Снимок даты
// строится заново на каждый вызов: корректность требует свежих часов.
func (s *Service) Render(ctx context.Context, mode render.Mode, p render.Params, format Format) (Result, error) {
	const op = "services.wallpaper.Render"
	start := time.Now()

	snap := s.now()
	key := cacheKey(mode, p, format, snap)

	if s.cache != nil {
		data, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("image cache get failed", sl.Err(err))
		}
		if found {
			metrics.CacheHit()
			return Result{Data: data, ContentType: format.ContentType()}, nil
		}
		metrics.CacheMiss()
	}

	prims := render.Render(mode, p, snap, s.fonts)

	var data []byte
	switch format {
	case FormatSVG:
		surface := svgx.New(p.Width, p.Height)
		render.Replay(prims, surface)
		data = surface.Finalize()
	default:
		surface := raster.New(p.Width, p.Height, s.fonts)
		render.Replay(prims, surface)
		encoded, err := surface.EncodePNG()
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}
		data = encoded
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data, untilNextISTMidnight(time.Now())); err != nil {
			s.log.Warn("image cache set failed", sl.Err(err))
		}
	}

	metrics.ObserveRender(string(mode), string(p.Style), string(format), time.Since(start))
	return Result{Data: data, ContentType: format.ContentType()}, nil
}

// cacheKey включает режим, стиль, формат, дату снимка и хеш всех
// параметров: любое изменение входа даёт другой ключ.
func cacheKey(mode render.Mode, p render.Params, format Format, snap calendar.Snapshot) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%+v", p)))
	return fmt.Sprintf("wallpaper:%s:%s:%04d-%02d-%02d:%x",
		mode, format, snap.Year, int(snap.Month), snap.DayOfMonth, sum[:8])
}

// untilNextISTMidnight — время жизни кеша: до следующей полуночи в IST,
// чтобы вчерашний день не пережил смену даты.
func untilNextISTMidnight(now time.Time) time.Duration {
	ist := now.In(calendar.IST)
	next := time.Date(ist.Year(), ist.Month(), ist.Day()+1, 0, 0, 0, 0, calendar.IST)
	return next.Sub(ist)
}
