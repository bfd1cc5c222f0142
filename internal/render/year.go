package render

import (
	"fmt"
	"math"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

// YearGrid — геометрия годовой сетки, вынесена отдельно ради проверяемости.
type YearGrid struct {
	Columns, Rows         int
	CellSize              int
	GridWidth, GridHeight float64
	OffsetX, OffsetY      float64
	SubtitleY             float64
	SubtitleFontSize      int
}

// YearGridLayout считает сетку: колонки по 85% ширины, минимум одна колонка
// даже при патологически малой ширине, вертикальное центрирование со
// смещением вниз на 5% высоты, чтобы не попадать под часы устройства.
func YearGridLayout(p Params, totalDays int) YearGrid {
	cellSize := 2*p.Radius + p.Spacing
	columns := int(0.85 * float64(p.Width) / float64(cellSize))
	if columns < 1 {
		columns = 1
	}
	rows := (totalDays + columns - 1) / columns

	g := YearGrid{
		Columns:          columns,
		Rows:             rows,
		CellSize:         cellSize,
		GridWidth:        float64(columns*cellSize - p.Spacing),
		GridHeight:       float64(rows*cellSize - p.Spacing),
		SubtitleFontSize: max(28, p.Width/32),
	}

	const gridToSubtitleGap = 25
	totalContentHeight := g.GridHeight + gridToSubtitleGap + float64(g.SubtitleFontSize)
	g.OffsetY = (float64(p.Height)-totalContentHeight)/2 + 0.05*float64(p.Height)
	g.OffsetX = (float64(p.Width) - g.GridWidth) / 2
	g.SubtitleY = g.OffsetY + g.GridHeight + gridToSubtitleGap

	return g
}

// layoutYear раскладывает круги по одному на каждый день года: пройденные
// дни залиты, текущий выделен, будущие обведены контуром.
func layoutYear(p Params, snap calendar.Snapshot, m Measurer) []Primitive {
	w, h := float64(p.Width), float64(p.Height)
	g := YearGridLayout(p, snap.DaysInYear)
	radius := float64(p.Radius)

	prims := []Primitive{
		FilledRect{X: 0, Y: 0, W: w, H: h, Color: Opaque(p.Background)},
	}

	for i := 0; i < snap.DaysInYear; i++ {
		col := i % g.Columns
		row := i / g.Columns
		cx := g.OffsetX + float64(col*g.CellSize) + radius
		cy := g.OffsetY + float64(row*g.CellSize) + radius

		switch classifyDay(i+1, snap.DayOfYear) {
		case dayPassed:
			prims = append(prims, FilledCircle{CX: cx, CY: cy, R: radius, Color: Opaque(p.Filled)})
		case dayCurrent:
			prims = append(prims, FilledCircle{CX: cx, CY: cy, R: radius, Color: Opaque(p.Highlight)})
		default:
			prims = append(prims, StrokedCircle{CX: cx, CY: cy, R: radius - 1, Width: 2, Color: Opaque(p.Empty)})
		}
	}

	subtitleFont := FontSpec{Family: uiFont, Size: float64(g.SubtitleFontSize), Weight: 400}
	prims = appendStatsRow(prims, m, statsRow{
		centerX:   w / 2,
		y:         g.SubtitleY + float64(g.SubtitleFontSize)/2,
		font:      subtitleFont,
		sepMargin: 16,
		left:      fmt.Sprintf("%dd left", snap.DaysRemainingInYear()),
		leftColor: Opaque(p.Accent),
		right:     fmt.Sprintf("%.1f%%", snap.YearProgressPercent()),
		textColor: Opaque(p.Text),
		sepColor:  Opaque(p.Text),
	})

	captionSize := math.Max(42, math.Floor(w/20))
	return appendCaption(prims, p, w, h, captionSize)
}
