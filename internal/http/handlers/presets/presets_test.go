package presets

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/wallpaper-generator/internal/models"
)

func TestPresetsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := New(logger, "http://localhost:8080")

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Devices     map[string]models.DevicePreset `json:"devices"`
			Themes      map[string]models.Theme        `json:"themes"`
			Fonts       map[string]string              `json:"fonts"`
			MonthStyles map[string]string              `json:"month_styles"`
			ExampleURL  string                         `json:"example_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "OK", body.Status)
	assert.Len(t, body.Data.Devices, len(models.DevicePresets))
	assert.Len(t, body.Data.Themes, len(models.PresetThemes))
	assert.Contains(t, body.Data.Fonts, "Lora")
	assert.Contains(t, body.Data.MonthStyles, "glass")
	assert.Equal(t, "iPhone 17", body.Data.Devices["iphone-17"].Name)
	assert.Contains(t, body.Data.ExampleURL, "http://localhost:8080/api/wallpaper?")
	assert.Contains(t, body.Data.ExampleURL, "width=1284")
}
