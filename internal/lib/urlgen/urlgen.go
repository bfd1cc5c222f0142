// Package urlgen собирает каноническую query-строку эндпоинта обоев из
// пользовательских настроек и содержит пару взаимно обратных помощников
// для передачи цветов в URL без решётки.
package urlgen

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/wallpaper-generator/internal/models"
)

// HexToParam убирает ведущую решётку цвета для query-параметра.
// Удаляется не больше одной решётки.
func HexToParam(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// ParamToHex возвращает цвет с решёткой; значение с решёткой не меняется.
func ParamToHex(param string) string {
	if strings.HasPrefix(param, "#") {
		return param
	}
	return "#" + param
}

// GenerateAPIURL строит полный URL годового эндпоинта по настройкам.
func GenerateAPIURL(baseURL string, s models.Settings) string {
	params := url.Values{}
	params.Set("width", strconv.Itoa(s.Width))
	params.Set("height", strconv.Itoa(s.Height))
	params.Set("bg", HexToParam(s.Background))
	params.Set("filled", HexToParam(s.FilledColor))
	params.Set("empty", HexToParam(s.EmptyColor))
	params.Set("radius", strconv.Itoa(s.Radius))
	params.Set("spacing", strconv.Itoa(s.Spacing))
	params.Set("textColor", HexToParam(s.TextColor))
	params.Set("showCustomText", strconv.FormatBool(s.ShowText))
	params.Set("customText", s.CustomText)
	params.Set("font", s.Font)

	return baseURL + "/api/wallpaper?" + params.Encode()
}
