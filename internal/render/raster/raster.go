// Package raster — immediate-mode поверхность рисования поверх
// *image.RGBA. Формы заливаются попиксельно с сглаживанием по расстоянию
// до границы, текст идёт через font.Drawer, итог кодируется в PNG.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/magabrotheeeer/wallpaper-generator/internal/fonts"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render"
)

// Surface растеризует примитивы движка в изображение.
type Surface struct {
	img   *image.RGBA
	fonts *fonts.Registry
}

// New создаёт поверхность заданного размера.
func New(width, height int, reg *fonts.Registry) *Surface {
	return &Surface{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts: reg,
	}
}

// EncodePNG кодирует накопленное изображение в PNG.
func (s *Surface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blend накладывает цвет на пиксель поверх существующего (source-over),
// cov ∈ [0,1] — покрытие пикселя формой.
func (s *Surface) blend(x, y int, c color.NRGBA, cov float64) {
	if cov <= 0 || !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	a := float64(c.A) / 255 * cov
	if a <= 0 {
		return
	}
	off := s.img.PixOffset(x, y)
	pix := s.img.Pix

	ia := 1 - a
	pix[off] = uint8(float64(c.R)*a + float64(pix[off])*ia + 0.5)
	pix[off+1] = uint8(float64(c.G)*a + float64(pix[off+1])*ia + 0.5)
	pix[off+2] = uint8(float64(c.B)*a + float64(pix[off+2])*ia + 0.5)
	pix[off+3] = uint8(math.Min(255, a*255+float64(pix[off+3])*ia+0.5))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundedRectDist — расстояние со знаком от точки до границы
// скруглённого прямоугольника: отрицательное внутри.
func roundedRectDist(px, py, x, y, w, h, r float64) float64 {
	cx, cy := x+w/2, y+h/2
	dx := math.Abs(px-cx) - (w/2 - r)
	dy := math.Abs(py-cy) - (h/2 - r)
	ox := math.Max(dx, 0)
	oy := math.Max(dy, 0)
	return math.Hypot(ox, oy) + math.Min(math.Max(dx, dy), 0) - r
}

func (s *Surface) bbox(x0, y0, x1, y1 float64) (minX, minY, maxX, maxY int) {
	minX = max(int(math.Floor(x0)), s.img.Rect.Min.X)
	minY = max(int(math.Floor(y0)), s.img.Rect.Min.Y)
	maxX = min(int(math.Ceil(x1)), s.img.Rect.Max.X)
	maxY = min(int(math.Ceil(y1)), s.img.Rect.Max.Y)
	return
}

// FillRect реализует render.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	minX, minY, maxX, maxY := s.bbox(x, y, x+w, y+h)
	for py := minY; py < maxY; py++ {
		fy := float64(py) + 0.5
		covY := clamp01(fy-y+0.5) * clamp01(y+h-fy+0.5)
		for px := minX; px < maxX; px++ {
			fx := float64(px) + 0.5
			cov := covY * clamp01(fx-x+0.5) * clamp01(x+w-fx+0.5)
			s.blend(px, py, c, cov)
		}
	}
}

// FillCircle реализует render.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	minX, minY, maxX, maxY := s.bbox(cx-r-1, cy-r-1, cx+r+1, cy+r+1)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			s.blend(px, py, c, clamp01(r+0.5-d))
		}
	}
}

// StrokeCircle реализует render.Surface: окружность обводится полосой
// заданной толщины, центрированной на радиусе.
func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	half := width / 2
	minX, minY, maxX, maxY := s.bbox(cx-r-half-1, cy-r-half-1, cx+r+half+1, cy+r+half+1)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			s.blend(px, py, c, clamp01(half+0.5-math.Abs(d-r)))
		}
	}
}

// FillRoundedRect реализует render.Surface.
func (s *Surface) FillRoundedRect(x, y, w, h, radius float64, c color.NRGBA) {
	minX, minY, maxX, maxY := s.bbox(x-1, y-1, x+w+1, y+h+1)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := roundedRectDist(float64(px)+0.5, float64(py)+0.5, x, y, w, h, radius)
			s.blend(px, py, c, clamp01(0.5-d))
		}
	}
}

// StrokeRoundedRect реализует render.Surface.
func (s *Surface) StrokeRoundedRect(x, y, w, h, radius, width float64, c color.NRGBA) {
	half := width / 2
	minX, minY, maxX, maxY := s.bbox(x-half-1, y-half-1, x+w+half+1, y+h+half+1)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := roundedRectDist(float64(px)+0.5, float64(py)+0.5, x, y, w, h, radius)
			s.blend(px, py, c, clamp01(half+0.5-math.Abs(d)))
		}
	}
}

// GradientRoundedRect реализует render.Surface: вертикальный линейный
// градиент от верхнего цвета к нижнему внутри скруглённой формы.
func (s *Surface) GradientRoundedRect(x, y, w, h, radius float64, top, bottom color.NRGBA) {
	if h <= 0 {
		return
	}
	minX, minY, maxX, maxY := s.bbox(x-1, y-1, x+w+1, y+h+1)
	for py := minY; py < maxY; py++ {
		t := clamp01((float64(py) + 0.5 - y) / h)
		c := lerpColor(top, bottom, t)
		for px := minX; px < maxX; px++ {
			d := roundedRectDist(float64(px)+0.5, float64(py)+0.5, x, y, w, h, radius)
			s.blend(px, py, c, clamp01(0.5-d))
		}
	}
}

// RadialGlow реализует render.Surface: плавное затухание прозрачности от
// центра к радиусу.
func (s *Surface) RadialGlow(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	minX, minY, maxX, maxY := s.bbox(cx-r, cy-r, cx+r, cy+r)
	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if d >= r {
				continue
			}
			s.blend(px, py, c, 1-d/r)
		}
	}
}

// FillText реализует render.Surface: позиционирует строку по привязкам и
// рисует её через font.Drawer.
func (s *Surface) FillText(run render.TextRun) {
	face := s.fonts.Face(run.Font)

	x := run.X
	if run.Align == render.AlignCenter {
		adv := font.MeasureString(face, run.Text)
		x -= float64(adv) / 64 / 2
	}

	y := run.Y
	if run.Baseline == render.BaselineMiddle {
		m := face.Metrics()
		ascent := float64(m.Ascent) / 64
		descent := float64(m.Descent) / 64
		y += (ascent - descent) / 2
	}

	d := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(run.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(run.Text)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	it := 1 - t
	return color.NRGBA{
		R: uint8(float64(a.R)*it + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*it + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*it + float64(b.B)*t + 0.5),
		A: uint8(float64(a.A)*it + float64(b.A)*t + 0.5),
	}
}
