package render

import (
	"fmt"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

var classicSpec = monthStyleSpec{
	widthFrac:      0.85,
	verticalOffset: 0.05,
	longHeaders:    true,
	titleFont:      sizeRule{34, 24},
	dayNameFont:    sizeRule{20, 42},
	dateFont:       sizeRule{28, 30},
	subtitleFont:   sizeRule{26, 34},
	captionFont:    sizeRule{38, 20},
}

// layoutMonthClassic — стиль «classic»: сетка из явных горизонтальных и
// вертикальных линий без карточки, фоновых плиток нет, цветом отличаются
// только номера дней, текущий день отмечен кругом позади номера.
func layoutMonthClassic(p Params, snap calendar.Snapshot, m Measurer) []Primitive {
	spec := classicSpec
	w, h := float64(p.Width), float64(p.Height)
	wi := p.Width
	rows := monthRows(snap.DaysInMonth, snap.FirstWeekday)

	titleFont := spec.titleFont.px(wi)
	dayNameFont := spec.dayNameFont.px(wi)
	dateFont := spec.dateFont.px(wi)
	subtitleFont := spec.subtitleFont.px(wi)

	cellSize := int(w*spec.widthFrac) / monthColumns
	gridWidth := monthColumns * cellSize
	gridHeight := rows * cellSize

	titleHeight := titleFont + 24
	headerHeight := dayNameFont + 18
	const gridToSubtitleGap = 24
	totalContentHeight := titleHeight + headerHeight + gridHeight + gridToSubtitleGap + subtitleFont

	contentStartY := (h-float64(totalContentHeight))/2 + spec.verticalOffset*h
	offsetX := (w - float64(gridWidth)) / 2
	titleY := contentStartY
	headerY := titleY + float64(titleHeight)
	gridStartY := headerY + float64(headerHeight)
	subtitleY := gridStartY + float64(gridHeight+gridToSubtitleGap)

	prims := []Primitive{
		FilledRect{X: 0, Y: 0, W: w, H: h, Color: Opaque(p.Background)},
	}

	prims = append(prims, TextRun{
		Text:     fmt.Sprintf("%s %d", snap.MonthNameShort, snap.Year),
		X:        w / 2,
		Y:        titleY + float64(titleHeight)/2,
		Color:    Opaque(p.Filled),
		Font:     FontSpec{Family: uiFont, Size: float64(titleFont), Weight: 600},
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	})

	headerFontSpec := FontSpec{Family: uiFont, Size: float64(dayNameFont), Weight: 500}
	headerColor := RGBA(p.Text, 0.72)
	prims = appendHeaderRow(prims, spec, offsetX, headerY+float64(headerHeight)/2,
		float64(cellSize), 0, headerFontSpec, headerColor, headerColor)

	// Полная решётка линий толщиной в один пиксель, а не рамки ячеек.
	lineColor := RGBA(p.Text, 0.24)
	for row := 0; row <= rows; row++ {
		prims = append(prims, FilledRect{
			X: offsetX, Y: gridStartY + float64(row*cellSize),
			W: float64(gridWidth), H: 1, Color: lineColor,
		})
	}
	for col := 0; col <= monthColumns; col++ {
		prims = append(prims, FilledRect{
			X: offsetX + float64(col*cellSize), Y: gridStartY,
			W: 1, H: float64(gridHeight), Color: lineColor,
		})
	}

	cs := float64(cellSize)
	dateFontSpec := FontSpec{Family: uiFont, Size: float64(dateFont)}
	forEachCell(rows, snap.FirstWeekday, snap.DaysInMonth, snap.DayOfMonth,
		offsetX, gridStartY, cs, 0, func(c cellVisit) {
			if !c.Valid {
				return
			}

			numFont := dateFontSpec
			numFont.Weight = 400
			numColor := RGBA(p.Text, 0.46)
			switch c.State {
			case dayCurrent:
				prims = append(prims, FilledCircle{
					CX: c.X + cs/2, CY: c.Y + cs/2, R: cs * 0.35, Color: Opaque(p.Highlight),
				})
				numFont.Weight = 700
				numColor = Opaque(p.Background)
			case dayPassed:
				numColor = Opaque(p.Filled)
			}
			prims = appendDayNumber(prims, c, cs, numFont, numColor)
		})

	prims = appendStatsRow(prims, m, statsRow{
		centerX:   w / 2,
		y:         subtitleY + float64(subtitleFont)/2,
		font:      FontSpec{Family: uiFont, Size: float64(subtitleFont), Weight: 400},
		sepMargin: 14,
		left:      fmt.Sprintf("%dd left", snap.DaysRemainingInMonth()),
		leftColor: Opaque(p.Accent),
		right:     fmt.Sprintf("%.1f%%", snap.MonthProgressPercent()),
		textColor: Opaque(p.Text),
		sepColor:  Opaque(p.Text),
	})

	return appendCaption(prims, p, w, h, float64(spec.captionFont.px(wi)))
}
