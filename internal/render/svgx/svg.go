// Package svgx — retained-mode поверхность рисования: вместо растеризации
// примитивы сериализуются в SVG-разметку. Выбор между svgx и raster делает
// вызывающая сторона, движок раскладки о бэкенде не знает.
package svgx

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/magabrotheeeer/wallpaper-generator/internal/render"
)

// Surface накапливает SVG-элементы и определения градиентов.
type Surface struct {
	width, height int
	body          bytes.Buffer
	defs          bytes.Buffer
	gradSeq       int
}

// New создаёт поверхность заданного размера.
func New(width, height int) *Surface {
	return &Surface{width: width, height: height}
}

// Finalize собирает готовый SVG-документ.
func (s *Surface) Finalize() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.width, s.height, s.width, s.height)
	out.WriteByte('\n')
	if s.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.Write(s.defs.Bytes())
		out.WriteString("</defs>\n")
	}
	out.Write(s.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

// FillRect реализует render.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		x, y, w, h, rgb(c), opacity(c))
}

// FillCircle реализует render.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		cx, cy, r, rgb(c), opacity(c))
}

// StrokeCircle реализует render.Surface.
func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>`+"\n",
		cx, cy, r, rgb(c), opacity(c), width)
}

// FillRoundedRect реализует render.Surface.
func (s *Surface) FillRoundedRect(x, y, w, h, radius float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="%s" fill-opacity="%.3f"/>`+"\n",
		x, y, w, h, radius, rgb(c), opacity(c))
}

// StrokeRoundedRect реализует render.Surface.
func (s *Surface) StrokeRoundedRect(x, y, w, h, radius, width float64, c color.NRGBA) {
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>`+"\n",
		x, y, w, h, radius, rgb(c), opacity(c), width)
}

// GradientRoundedRect реализует render.Surface: на каждый вызов создаётся
// отдельное определение вертикального градиента.
func (s *Surface) GradientRoundedRect(x, y, w, h, radius float64, top, bottom color.NRGBA) {
	s.gradSeq++
	id := fmt.Sprintf("lg%d", s.gradSeq)
	fmt.Fprintf(&s.defs, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+
		`<stop offset="0%%" stop-color="%s" stop-opacity="%.3f"/>`+
		`<stop offset="100%%" stop-color="%s" stop-opacity="%.3f"/>`+
		`</linearGradient>`+"\n",
		id, rgb(top), opacity(top), rgb(bottom), opacity(bottom))
	fmt.Fprintf(&s.body, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" fill="url(#%s)"/>`+"\n",
		x, y, w, h, radius, id)
}

// RadialGlow реализует render.Surface.
func (s *Surface) RadialGlow(cx, cy, r float64, c color.NRGBA) {
	s.gradSeq++
	id := fmt.Sprintf("rg%d", s.gradSeq)
	fmt.Fprintf(&s.defs, `<radialGradient id="%s">`+
		`<stop offset="0%%" stop-color="%s" stop-opacity="%.3f"/>`+
		`<stop offset="100%%" stop-color="%s" stop-opacity="0"/>`+
		`</radialGradient>`+"\n",
		id, rgb(c), opacity(c), rgb(c))
	fmt.Fprintf(&s.body, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="url(#%s)"/>`+"\n",
		cx, cy, r, id)
}

// FillText реализует render.Surface.
func (s *Surface) FillText(run render.TextRun) {
	anchor := "start"
	if run.Align == render.AlignCenter {
		anchor = "middle"
	}
	baseline := "alphabetic"
	if run.Baseline == render.BaselineMiddle {
		baseline = "central"
	}
	style := ""
	if run.Font.Italic {
		style = ` font-style="italic"`
	}
	weight := run.Font.Weight
	if weight == 0 {
		weight = 400
	}
	fmt.Fprintf(&s.body, `<text x="%.2f" y="%.2f" fill="%s" fill-opacity="%.3f" font-family=%q font-size="%.2f" font-weight="%d"%s text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
		run.X, run.Y, rgb(run.Color), opacity(run.Color), cssFamily(run.Font.Family),
		run.Font.Size, weight, style, anchor, baseline, escape(run.Text))
}

// cssFamily переводит ключ семейства в CSS-список с запасным вариантом.
func cssFamily(family string) string {
	switch family {
	case "", "sans-serif":
		return "system-ui, -apple-system, sans-serif"
	case "serif", "monospace":
		return family
	default:
		return family + ", serif"
	}
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
