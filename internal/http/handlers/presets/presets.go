// Package presets реализует HTTP-обработчик справочника настроек.
//
// Handler возвращает пресеты устройств, готовые темы, доступные шрифты и
// стили месячного календаря вместе с примером URL обоев для настроек
// по умолчанию.
package presets

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/wallpaper-generator/internal/http/response"
	"github.com/magabrotheeeer/wallpaper-generator/internal/lib/urlgen"
	"github.com/magabrotheeeer/wallpaper-generator/internal/models"
)

// Handler возвращает справочные данные для построения URL обоев.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	baseURL string       // Базовый адрес сервера для примеров URL
}

// New создает новый Handler с переданным логгером и базовым адресом.
func New(log *slog.Logger, baseURL string) *Handler {
	return &Handler{
		log:     log,
		baseURL: baseURL,
	}
}

// ServeHTTP godoc
// @Summary Получить справочник настроек
// @Description Возвращает пресеты устройств, темы, шрифты, стили календаря и пример URL обоев для настроек по умолчанию.
// @Tags Presets
// @Produce json
// @Success 200 {object} map[string]any "Справочник настроек"
// @Router /api/presets [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.presets"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	defaults := models.DefaultSettings()
	exampleURL := urlgen.GenerateAPIURL(h.baseURL, defaults)

	log.Info("success to list presets",
		slog.Int("devices", len(models.DevicePresets)),
		slog.Int("themes", len(models.PresetThemes)))

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"devices":      models.DevicePresets,
		"themes":       models.PresetThemes,
		"fonts":        models.FontOptions,
		"month_styles": models.MonthStyles,
		"defaults":     defaults,
		"example_url":  exampleURL,
	}))
}
