// Package render реализует движок раскладки и отрисовки обоев прогресса:
// четыре алгоритма раскладки (годовая сетка кругов и три месячных стиля)
// поверх общего словаря примитивов, воспроизводимых на любой поверхности.
package render

import (
	"net/url"
	"strconv"
)

// Mode — режим рендера: год или месяц.
type Mode string

const (
	// ModeYear — сетка кругов на весь год.
	ModeYear Mode = "year"
	// ModeMonth — календарная сетка текущего месяца.
	ModeMonth Mode = "month"
)

// MonthStyle — визуальный стиль месячного режима.
type MonthStyle string

const (
	// StyleGlass — полупрозрачная карточка, стиль по умолчанию.
	StyleGlass MonthStyle = "glass"
	// StyleClassic — простая сетка с линиями.
	StyleClassic MonthStyle = "classic"
	// StyleBold — плотные плитки в непрозрачной оболочке.
	StyleBold MonthStyle = "bold"
)

// NormalizeStyle возвращает известный стиль, нераспознанное значение
// молча превращается в glass.
func NormalizeStyle(s string) MonthStyle {
	switch MonthStyle(s) {
	case StyleClassic:
		return StyleClassic
	case StyleBold:
		return StyleBold
	default:
		return StyleGlass
	}
}

// Params — проверенный набор параметров одного рендера. Живёт только в
// течение вызова, между запросами ничего не переиспользуется.
type Params struct {
	Width  int `validate:"gt=0"`
	Height int `validate:"gt=0"`

	Background string
	Filled     string
	Empty      string
	Text       string
	Highlight  string
	Accent     string

	Radius  int `validate:"gt=0"`
	Spacing int `validate:"gte=0"`

	ShowCaption bool
	Caption     string
	Font        string

	Style MonthStyle
}

// DefaultParams возвращает параметры по умолчанию: экран iPhone 17 и
// минимальная чёрно-белая тема.
func DefaultParams() Params {
	return Params{
		Width:      1284,
		Height:     2778,
		Background: "000000",
		Filled:     "FFFFFF",
		Empty:      "333333",
		Text:       "FFFFFF",
		Highlight:  "FFD700",
		Accent:     "FFA500",
		Radius:     12,
		Spacing:    6,
		Font:       "Lora",
		Style:      StyleGlass,
	}
}

// ParseQuery собирает Params из query-строки. Отсутствующие и нечисловые
// значения заменяются значениями по умолчанию, цвета нормализуются сразу.
func ParseQuery(q url.Values) Params {
	p := DefaultParams()

	p.Width = intParam(q, "width", p.Width)
	p.Height = intParam(q, "height", p.Height)
	p.Radius = intParam(q, "radius", p.Radius)
	p.Spacing = intParam(q, "spacing", p.Spacing)

	p.Background = NormalizeHex(strParam(q, "bg", p.Background))
	p.Filled = NormalizeHex(strParam(q, "filled", p.Filled))
	p.Empty = NormalizeHex(strParam(q, "empty", p.Empty))
	p.Text = NormalizeHex(strParam(q, "textColor", p.Text))
	p.Highlight = NormalizeHex(strParam(q, "highlightColor", p.Highlight))
	p.Accent = NormalizeHex(strParam(q, "accentColor", p.Accent))

	p.ShowCaption = q.Get("showCustomText") == "true"
	p.Caption = q.Get("customText")
	p.Font = strParam(q, "font", p.Font)
	p.Style = NormalizeStyle(q.Get("monthStyle"))

	return p
}

func intParam(q url.Values, key string, def int) int {
	raw := q.Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func strParam(q url.Values, key, def string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return def
}
