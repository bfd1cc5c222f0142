// Package month реализует HTTP-обработчик генерации месячных обоев.
//
// Handler разбирает параметры рендера и стиль календаря из строки запроса,
// валидирует их, вызывает бизнес-логику генерации изображения и возвращает
// готовые байты PNG или SVG с корректным Content-Type.
package month

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/wallpaper-generator/internal/http/response"
	"github.com/magabrotheeeer/wallpaper-generator/internal/lib/sl"
	renderx "github.com/magabrotheeeer/wallpaper-generator/internal/render"
	"github.com/magabrotheeeer/wallpaper-generator/internal/services/wallpaper"
)

// Handler управляет HTTP-запросами на генерацию месячных обоев.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики рендера обоев
	validate *validator.Validate // Валидатор параметров рендера
}

// Service описывает интерфейс бизнес-логики генерации обоев.
type Service interface {
	Render(ctx context.Context, mode renderx.Mode, p renderx.Params, format wallpaper.Format) (wallpaper.Result, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сгенерировать месячные обои
// @Description Рендерит обои с календарной сеткой текущего месяца в одном из трех стилей: glass, classic или bold. Неизвестный стиль заменяется на glass.
// @Tags Wallpaper
// @Produce png
// @Param monthStyle query string false "Стиль календаря: glass, classic или bold" default(glass)
// @Param width query int false "Ширина изображения в пикселях" default(1284)
// @Param height query int false "Высота изображения в пикселях" default(2778)
// @Param bg query string false "Цвет фона (hex без #)" default(000000)
// @Param filled query string false "Цвет прошедших дней" default(FFFFFF)
// @Param empty query string false "Цвет будущих дней" default(333333)
// @Param textColor query string false "Цвет текста" default(FFFFFF)
// @Param highlightColor query string false "Цвет текущего дня" default(FFD700)
// @Param accentColor query string false "Акцентный цвет" default(FFA500)
// @Param showCustomText query bool false "Показывать подпись" default(false)
// @Param customText query string false "Текст подписи"
// @Param font query string false "Семейство шрифта" default(Lora)
// @Param format query string false "Формат вывода: png или svg" default(png)
// @Success 200 {file} binary "Изображение обоев"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры рендера"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при генерации"
// @Router /api/wallpaper/month [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.wallpaper.month"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	params := renderx.ParseQuery(r.URL.Query())
	if err := h.validate.Struct(params); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	format := wallpaper.NormalizeFormat(r.URL.Query().Get("format"))

	res, err := h.service.Render(r.Context(), renderx.ModeMonth, params, format)
	if err != nil {
		log.Error("failed to render wallpaper", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not render wallpaper"))
		return
	}

	log.Info("success to render month wallpaper",
		slog.String("style", string(params.Style)),
		slog.String("format", string(format)),
		slog.Int("bytes", len(res.Data)))

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Data); err != nil {
		log.Error("failed to write response", sl.Err(err))
	}
}
