package render

import "image/color"

// Align — горизонтальная привязка текстового прогона.
type Align int

const (
	// AlignLeft — X указывает левый край текста.
	AlignLeft Align = iota
	// AlignCenter — X указывает центр текста.
	AlignCenter
)

// Baseline — вертикальная привязка текстового прогона.
type Baseline int

const (
	// BaselineMiddle — Y указывает вертикальный центр строки.
	BaselineMiddle Baseline = iota
	// BaselineAlphabetic — Y указывает базовую линию шрифта.
	BaselineAlphabetic
)

// FontSpec описывает шрифт текстового прогона.
type FontSpec struct {
	Family string
	Size   float64
	Weight int
	Italic bool
}

// Surface — абстрактная поверхность рисования. Раскладка уже разрешила
// все координаты в абсолютные пиксели, поверхность только растеризует
// или сериализует.
type Surface interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	FillRoundedRect(x, y, w, h, radius float64, c color.NRGBA)
	StrokeRoundedRect(x, y, w, h, radius, width float64, c color.NRGBA)
	GradientRoundedRect(x, y, w, h, radius float64, top, bottom color.NRGBA)
	RadialGlow(cx, cy, r float64, c color.NRGBA)
	FillText(run TextRun)
}

// Measurer измеряет ширину текста в пикселях для заданного шрифта.
// Нужен раскладке до отрисовки: центрирование составных строк и подбор
// ширины бейджа требуют реальных метрик.
type Measurer interface {
	Measure(text string, f FontSpec) float64
}

// Primitive — одна команда рисования с абсолютными координатами.
type Primitive interface {
	Draw(s Surface)
}

// FilledRect — залитый прямоугольник.
type FilledRect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// Draw реализует Primitive.
func (p FilledRect) Draw(s Surface) { s.FillRect(p.X, p.Y, p.W, p.H, p.Color) }

// FilledCircle — залитый круг.
type FilledCircle struct {
	CX, CY, R float64
	Color     color.NRGBA
}

// Draw реализует Primitive.
func (p FilledCircle) Draw(s Surface) { s.FillCircle(p.CX, p.CY, p.R, p.Color) }

// StrokedCircle — окружность с обводкой заданной толщины.
type StrokedCircle struct {
	CX, CY, R, Width float64
	Color            color.NRGBA
}

// Draw реализует Primitive.
func (p StrokedCircle) Draw(s Surface) { s.StrokeCircle(p.CX, p.CY, p.R, p.Width, p.Color) }

// FilledRoundedRect — залитый скруглённый прямоугольник.
type FilledRoundedRect struct {
	X, Y, W, H, Radius float64
	Color              color.NRGBA
}

// Draw реализует Primitive.
func (p FilledRoundedRect) Draw(s Surface) {
	s.FillRoundedRect(p.X, p.Y, p.W, p.H, p.Radius, p.Color)
}

// StrokedRoundedRect — скруглённый прямоугольник с обводкой.
type StrokedRoundedRect struct {
	X, Y, W, H, Radius, Width float64
	Color                     color.NRGBA
}

// Draw реализует Primitive.
func (p StrokedRoundedRect) Draw(s Surface) {
	s.StrokeRoundedRect(p.X, p.Y, p.W, p.H, p.Radius, p.Width, p.Color)
}

// GradientRoundedRect — скруглённый прямоугольник с вертикальным
// двухцветным градиентом.
type GradientRoundedRect struct {
	X, Y, W, H, Radius float64
	Top, Bottom        color.NRGBA
}

// Draw реализует Primitive.
func (p GradientRoundedRect) Draw(s Surface) {
	s.GradientRoundedRect(p.X, p.Y, p.W, p.H, p.Radius, p.Top, p.Bottom)
}

// RadialGlow — мягкое радиальное свечение с затуханием к краю.
type RadialGlow struct {
	CX, CY, R float64
	Color     color.NRGBA
}

// Draw реализует Primitive.
func (p RadialGlow) Draw(s Surface) { s.RadialGlow(p.CX, p.CY, p.R, p.Color) }

// TextRun — один текстовый прогон.
type TextRun struct {
	Text     string
	X, Y     float64
	Color    color.NRGBA
	Font     FontSpec
	Align    Align
	Baseline Baseline
}

// Draw реализует Primitive.
func (p TextRun) Draw(s Surface) { s.FillText(p) }

// Replay последовательно воспроизводит примитивы на поверхности.
func Replay(prims []Primitive, s Surface) {
	for _, p := range prims {
		p.Draw(s)
	}
}
