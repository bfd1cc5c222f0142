package urlgen

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/wallpaper-generator/internal/models"
)

func TestHexToParam(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "решетка убирается", input: "#FF0000", expected: "FF0000"},
		{name: "значение без решетки не меняется", input: "00FF00", expected: "00FF00"},
		{name: "убирается только одна решетка", input: "##AABBCC", expected: "#AABBCC"},
		{name: "пустая строка остается пустой", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HexToParam(tt.input))
		})
	}
}

func TestParamToHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "решетка добавляется", input: "FF0000", expected: "#FF0000"},
		{name: "значение с решеткой не меняется", input: "#FF0000", expected: "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParamToHex(tt.input))
		})
	}
}

// Пара помощников взаимно обратна на корректных цветах.
func TestHexParamRoundTrip(t *testing.T) {
	for _, c := range []string{"#000000", "#FFD700", "#1A2B3C"} {
		assert.Equal(t, c, ParamToHex(HexToParam(c)))
	}
}

func TestGenerateAPIURL(t *testing.T) {
	s := models.DefaultSettings()
	got := GenerateAPIURL("https://example.com", s)

	require.True(t, strings.HasPrefix(got, "https://example.com/api/wallpaper?"))

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "1284", q.Get("width"))
	assert.Equal(t, "2778", q.Get("height"))
	assert.Equal(t, "000000", q.Get("bg"))
	assert.Equal(t, "FFFFFF", q.Get("filled"))
	assert.Equal(t, "333333", q.Get("empty"))
	assert.Equal(t, "12", q.Get("radius"))
	assert.Equal(t, "6", q.Get("spacing"))
	assert.Equal(t, "false", q.Get("showCustomText"))
	assert.Equal(t, "Lora", q.Get("font"))
}

func TestGenerateAPIURL_CustomTextEncoded(t *testing.T) {
	s := models.DefaultSettings()
	s.ShowText = true
	s.CustomText = "one day at a time"

	got := GenerateAPIURL("http://localhost:8080", s)

	assert.Contains(t, got, "showCustomText=true")
	assert.Contains(t, got, "customText=one+day+at+a+time")
	assert.NotContains(t, got, "#")
}
