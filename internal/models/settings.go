// Package models содержит справочные структуры публичного API: пресеты
// устройств, готовые темы, варианты шрифтов и настройки по умолчанию.
// Таблицы неизменяемы и разделяются всеми запросами.
package models

// DevicePreset — размеры экрана поддерживаемого устройства.
type DevicePreset struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
}

// Theme — готовая цветовая схема.
type Theme struct {
	Name        string `json:"name"`
	Background  string `json:"bg_color"`
	FilledColor string `json:"filled_color"`
	EmptyColor  string `json:"empty_color"`
	TextColor   string `json:"text_color"`
	AccentColor string `json:"accent_color"`
}

// Settings — полный набор пользовательских настроек, из которого
// собирается query-строка эндпоинта обоев.
type Settings struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Background  string `json:"bg_color"`
	FilledColor string `json:"filled_color"`
	EmptyColor  string `json:"empty_color"`
	Radius      int    `json:"radius"`
	Spacing     int    `json:"spacing"`
	TextColor   string `json:"text_color"`
	ShowText    bool   `json:"show_custom_text"`
	CustomText  string `json:"custom_text"`
	Font        string `json:"font"`
}

// DevicePresets — поддерживаемые экраны iPhone.
var DevicePresets = map[string]DevicePreset{
	"iphone-17":         {Width: 1284, Height: 2778, Name: "iPhone 17"},
	"iphone-17-pro":     {Width: 1206, Height: 2622, Name: "iPhone 17 Pro"},
	"iphone-17-pro-max": {Width: 1320, Height: 2868, Name: "iPhone 17 Pro Max"},
	"iphone-16-pro-max": {Width: 1320, Height: 2868, Name: "iPhone 16 Pro Max"},
	"iphone-15-pro":     {Width: 1179, Height: 2556, Name: "iPhone 15 Pro"},
	"iphone-15":         {Width: 1179, Height: 2556, Name: "iPhone 15"},
	"iphone-14-pro-max": {Width: 1290, Height: 2796, Name: "iPhone 14 Pro Max"},
	"iphone-14":         {Width: 1170, Height: 2532, Name: "iPhone 14"},
}

// FontOptions — публичные ключи шрифтов и их отображаемые имена.
var FontOptions = map[string]string{
	"Inter":            "Inter",
	"Playfair Display": "Playfair",
	"Roboto Mono":      "Roboto Mono",
	"Lora":             "Lora",
	"Oswald":           "Oswald",
	"sans-serif":       "Sans Serif",
	"serif":            "Serif",
	"monospace":        "Monospace",
}

// MonthStyles — отображаемые имена месячных стилей.
var MonthStyles = map[string]string{
	"glass":   "Glass Card",
	"classic": "Classic Grid",
	"bold":    "Bold Blocks",
}

// PresetThemes — встроенные темы.
var PresetThemes = map[string]Theme{
	"minimal":  {Name: "Minimal", Background: "#000000", FilledColor: "#FFFFFF", EmptyColor: "#333333", TextColor: "#FFFFFF", AccentColor: "#FFA500"},
	"neon":     {Name: "Neon", Background: "#0a0a0a", FilledColor: "#22c55e", EmptyColor: "#1a1a1a", TextColor: "#22c55e", AccentColor: "#4ade80"},
	"ocean":    {Name: "Ocean", Background: "#0c4a6e", FilledColor: "#38bdf8", EmptyColor: "#0369a1", TextColor: "#bae6fd", AccentColor: "#38bdf8"},
	"sunset":   {Name: "Sunset", Background: "#1c1917", FilledColor: "#f97316", EmptyColor: "#292524", TextColor: "#fed7aa", AccentColor: "#f97316"},
	"lavender": {Name: "Lavender", Background: "#1e1b4b", FilledColor: "#a78bfa", EmptyColor: "#312e81", TextColor: "#c4b5fd", AccentColor: "#a78bfa"},
	"midnight": {Name: "Midnight", Background: "#0f172a", FilledColor: "#7dd3fc", EmptyColor: "#1e293b", TextColor: "#e0f2fe", AccentColor: "#38bdf8"},
	"rose":     {Name: "Rose", Background: "#1a0a0e", FilledColor: "#fb7185", EmptyColor: "#2d1520", TextColor: "#fda4af", AccentColor: "#fb7185"},
	"teal":     {Name: "Teal", Background: "#042f2e", FilledColor: "#2dd4bf", EmptyColor: "#134e4a", TextColor: "#99f6e4", AccentColor: "#2dd4bf"},
	"mocha":    {Name: "Mocha", Background: "#1c1210", FilledColor: "#d4a574", EmptyColor: "#2e211c", TextColor: "#e8c9a8", AccentColor: "#d4a574"},
	"crimson":  {Name: "Crimson", Background: "#180a0a", FilledColor: "#ef4444", EmptyColor: "#2d1515", TextColor: "#fca5a5", AccentColor: "#ef4444"},
	"arctic":   {Name: "Arctic", Background: "#0f1729", FilledColor: "#e2e8f0", EmptyColor: "#1e2a45", TextColor: "#f1f5f9", AccentColor: "#94a3b8"},
	"amber":    {Name: "Amber", Background: "#1a1000", FilledColor: "#fbbf24", EmptyColor: "#2e2308", TextColor: "#fde68a", AccentColor: "#f59e0b"},
}

// DefaultSettings возвращает настройки по умолчанию (экран iPhone 17,
// тема minimal).
func DefaultSettings() Settings {
	return Settings{
		Width:       1284,
		Height:      2778,
		Background:  "#000000",
		FilledColor: "#FFFFFF",
		EmptyColor:  "#333333",
		Radius:      12,
		Spacing:     6,
		TextColor:   "#FFFFFF",
		ShowText:    false,
		CustomText:  "",
		Font:        "Lora",
	}
}
