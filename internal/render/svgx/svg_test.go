package svgx

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render"
)

func TestFinalize_Envelope(t *testing.T) {
	s := New(100, 200)
	out := string(s.Finalize())

	assert.Contains(t, out, `width="100"`)
	assert.Contains(t, out, `height="200"`)
	assert.Contains(t, out, `viewBox="0 0 100 200"`)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, "</svg>")
	// Пустая поверхность не создает блок определений.
	assert.NotContains(t, out, "<defs>")
}

func TestPrimitives_Emitted(t *testing.T) {
	s := New(500, 500)
	s.FillRect(0, 0, 500, 500, color.NRGBA{A: 255})
	s.FillCircle(50, 50, 10, color.NRGBA{R: 255, A: 255})
	s.StrokeCircle(100, 100, 10, 2, color.NRGBA{G: 255, A: 128})
	s.FillRoundedRect(10, 10, 80, 40, 8, color.NRGBA{B: 255, A: 255})
	s.GradientRoundedRect(10, 60, 80, 40, 8, color.NRGBA{R: 255, A: 26}, color.NRGBA{R: 255, A: 10})
	s.RadialGlow(250, 250, 120, color.NRGBA{R: 255, G: 215, A: 36})
	out := string(s.Finalize())

	assert.Contains(t, out, `<rect`)
	assert.Contains(t, out, `<circle`)
	assert.Contains(t, out, `stroke-width="2.00"`)
	assert.Contains(t, out, `rx="8.00"`)
	assert.Contains(t, out, `<linearGradient id="lg1"`)
	assert.Contains(t, out, `<radialGradient id="rg2"`)
	assert.Contains(t, out, `fill="url(#lg1)"`)
	assert.Contains(t, out, `fill="url(#rg2)"`)
}

func TestFillText_AttributesAndEscaping(t *testing.T) {
	s := New(300, 300)
	s.FillText(render.TextRun{
		Text:     `5 < 6 & "ok"`,
		X:        150,
		Y:        100,
		Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Font:     render.FontSpec{Family: "Lora", Size: 24, Italic: true},
		Align:    render.AlignCenter,
		Baseline: render.BaselineMiddle,
	})
	out := string(s.Finalize())

	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `dominant-baseline="central"`)
	assert.Contains(t, out, `font-style="italic"`)
	assert.Contains(t, out, `font-family="Lora, serif"`)
	assert.Contains(t, out, "5 &lt; 6 &amp; &quot;ok&quot;")
	// Нулевой вес шрифта заменяется обычным.
	assert.Contains(t, out, `font-weight="400"`)
}

// Полный годовой рендер дает синтаксически корректный XML.
func TestRenderYear_WellFormedXML(t *testing.T) {
	p := render.DefaultParams()
	snap := calendar.SnapshotAt(time.Date(2025, 10, 1, 12, 0, 0, 0, calendar.IST))

	s := New(p.Width, p.Height)
	render.Replay(render.Render(render.ModeYear, p, snap, measureStub{}), s)
	out := s.Finalize()

	decoder := xml.NewDecoder(bytes.NewReader(out))
	for {
		_, err := decoder.Token()
		if err != nil {
			require.Equal(t, "EOF", err.Error())
			break
		}
	}
}

type measureStub struct{}

func (measureStub) Measure(text string, spec render.FontSpec) float64 {
	return float64(len(text)) * spec.Size * 0.6
}
