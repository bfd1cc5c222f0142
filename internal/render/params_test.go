package render

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, p Params)
	}{
		{
			name:  "пустой запрос дает значения по умолчанию",
			query: "",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, DefaultParams(), p)
			},
		},
		{
			name:  "числовые параметры читаются из запроса",
			query: "width=1000&height=2000&radius=10&spacing=5",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, 1000, p.Width)
				assert.Equal(t, 2000, p.Height)
				assert.Equal(t, 10, p.Radius)
				assert.Equal(t, 5, p.Spacing)
			},
		},
		{
			name:  "нечисловое значение заменяется значением по умолчанию",
			query: "width=abc&radius=",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, 1284, p.Width)
				assert.Equal(t, 12, p.Radius)
			},
		},
		{
			name:  "отрицательные значения проходят парсинг без изменения",
			query: "width=-5",
			check: func(t *testing.T, p Params) {
				// Отказ по диапазону — зона ответственности валидатора.
				assert.Equal(t, -5, p.Width)
			},
		},
		{
			name:  "цвета нормализуются и приводятся к верхнему регистру",
			query: "bg=%23ff0000&filled=00ff00&textColor=abcdef",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, "FF0000", p.Background)
				assert.Equal(t, "00FF00", p.Filled)
				assert.Equal(t, "ABCDEF", p.Text)
			},
		},
		{
			name:  "некорректный цвет заменяется белым",
			query: "bg=xyz&highlightColor=12345",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, "FFFFFF", p.Background)
				assert.Equal(t, "FFFFFF", p.Highlight)
			},
		},
		{
			name:  "подпись включается только явным true",
			query: "showCustomText=true&customText=hello+world",
			check: func(t *testing.T, p Params) {
				assert.True(t, p.ShowCaption)
				assert.Equal(t, "hello world", p.Caption)
			},
		},
		{
			name:  "любое другое значение showCustomText выключает подпись",
			query: "showCustomText=yes&customText=hi",
			check: func(t *testing.T, p Params) {
				assert.False(t, p.ShowCaption)
			},
		},
		{
			name:  "известный стиль месяца читается из запроса",
			query: "monthStyle=bold",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, StyleBold, p.Style)
			},
		},
		{
			name:  "неизвестный стиль месяца превращается в glass",
			query: "monthStyle=neon",
			check: func(t *testing.T, p Params) {
				assert.Equal(t, StyleGlass, p.Style)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			tt.check(t, ParseQuery(q))
		})
	}
}

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MonthStyle
	}{
		{name: "glass остается glass", input: "glass", expected: StyleGlass},
		{name: "classic остается classic", input: "classic", expected: StyleClassic},
		{name: "bold остается bold", input: "bold", expected: StyleBold},
		{name: "пустая строка дает glass", input: "", expected: StyleGlass},
		{name: "неизвестное значение дает glass", input: "minimal", expected: StyleGlass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStyle(tt.input))
		})
	}
}
