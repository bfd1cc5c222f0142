package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

var boldSpec = monthStyleSpec{
	widthFrac:      0.90,
	verticalOffset: 0.055,
	longHeaders:    false,
	titleFont:      sizeRule{26, 23},
	dayNameFont:    sizeRule{12, 72},
	dateFont:       sizeRule{20, 34},
	subtitleFont:   sizeRule{20, 42},
	captionFont:    sizeRule{34, 21},
}

// layoutMonthBold — стиль «bold»: непрозрачная оболочка с акцентной
// рамкой и лентой, заголовок месяца капсом, плотная сетка плиток без
// рамок; рамку и свечение получает только текущий день. Строка
// статистики рисуется одной строкой, а не тремя сегментами.
func layoutMonthBold(p Params, snap calendar.Snapshot, _ Measurer) []Primitive {
	spec := boldSpec
	w, h := float64(p.Width), float64(p.Height)
	wi := p.Width
	rows := monthRows(snap.DaysInMonth, snap.FirstWeekday)

	titleFont := spec.titleFont.px(wi)
	dayNameFont := spec.dayNameFont.px(wi)
	dateFont := spec.dateFont.px(wi)
	subtitleFont := spec.subtitleFont.px(wi)

	shellWidth := math.Round(w * spec.widthFrac)
	shellRadius := max(22, wi/34)
	shellPadding := max(14, wi/44)
	gap := max(4, wi/180)
	cellSize := (int(shellWidth) - shellPadding*2 - gap*(monthColumns-1)) / monthColumns
	gridWidth := monthColumns*cellSize + gap*(monthColumns-1)
	gridHeight := rows*cellSize + gap*(rows-1)
	tileRadius := max(6, int(float64(cellSize)*0.24))

	titleBlock := titleFont + max(18, wi/66)
	headerBlock := dayNameFont + max(14, wi/94)
	subtitleBlock := subtitleFont + max(16, wi/90)
	shellHeight := shellPadding + titleBlock + headerBlock + gridHeight + subtitleBlock + shellPadding

	shellX := (w - shellWidth) / 2
	shellY := (h-float64(shellHeight))/2 + spec.verticalOffset*h
	gridStartX := shellX + (shellWidth-float64(gridWidth))/2
	titleY := shellY + float64(shellPadding) + float64(titleFont)/2
	headerY := shellY + float64(shellPadding+titleBlock)
	gridStartY := headerY + float64(headerBlock)
	subtitleY := gridStartY + float64(gridHeight) + float64(subtitleFont)/2 + float64(max(10, wi/88))

	prims := []Primitive{
		FilledRect{X: 0, Y: 0, W: w, H: h, Color: Opaque(p.Background)},
		FilledRoundedRect{
			X: shellX, Y: shellY, W: shellWidth, H: float64(shellHeight),
			Radius: float64(shellRadius), Color: RGBA(p.Text, 0.08),
		},
		StrokedRoundedRect{
			X: shellX, Y: shellY, W: shellWidth, H: float64(shellHeight),
			Radius: float64(shellRadius), Width: math.Max(1.5, w/540), Color: RGBA(p.Accent, 0.35),
		},
	}

	// Акцентная лента под заголовком на всю ширину оболочки.
	ribbonH := float64(max(34, wi/36))
	prims = append(prims, FilledRoundedRect{
		X: shellX + float64(shellPadding), Y: shellY + float64(shellPadding),
		W: shellWidth - float64(shellPadding*2), H: ribbonH,
		Radius: float64(max(17, wi/72)), Color: RGBA(p.Accent, 0.2),
	})

	prims = append(prims, TextRun{
		Text:     fmt.Sprintf("%s %d", strings.ToUpper(snap.MonthNameLong), snap.Year),
		X:        w / 2,
		Y:        titleY,
		Color:    Opaque(p.Filled),
		Font:     FontSpec{Family: uiFont, Size: float64(titleFont), Weight: 700},
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	})

	headerFontSpec := FontSpec{Family: uiFont, Size: float64(dayNameFont), Weight: 700}
	prims = appendHeaderRow(prims, spec, gridStartX, headerY+float64(dayNameFont)/2,
		float64(cellSize), float64(gap), headerFontSpec,
		RGBA(p.Text, 0.72), Opaque(p.Accent))

	cs := float64(cellSize)
	tr := float64(tileRadius)
	dateFontSpec := FontSpec{Family: uiFont, Size: float64(dateFont)}
	forEachCell(rows, snap.FirstWeekday, snap.DaysInMonth, snap.DayOfMonth,
		gridStartX, gridStartY, cs, float64(gap), func(c cellVisit) {
			if !c.Valid {
				// В отличие от glass, пустых плиток-заглушек нет.
				return
			}

			numFont := dateFontSpec
			switch c.State {
			case dayCurrent:
				glowR := cs/2 + float64(max(18, wi/70))
				prims = append(prims,
					RadialGlow{CX: c.X + cs/2, CY: c.Y + cs/2, R: glowR, Color: RGBA(p.Highlight, 0.45)},
					FilledRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: tr, Color: Opaque(p.Accent)},
					StrokedRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: tr, Width: 2, Color: RGBA(p.Highlight, 0.75)},
				)
				numFont.Weight = 800
				prims = appendDayNumber(prims, c, cs, numFont, Opaque(p.Background))
			case dayPassed:
				prims = append(prims, FilledRoundedRect{
					X: c.X, Y: c.Y, W: cs, H: cs, Radius: tr, Color: RGBA(p.Filled, 0.24),
				})
				numFont.Weight = 600
				prims = appendDayNumber(prims, c, cs, numFont, Opaque(p.Filled))
			default:
				prims = append(prims, FilledRoundedRect{
					X: c.X, Y: c.Y, W: cs, H: cs, Radius: tr, Color: RGBA(p.Empty, 0.24),
				})
				numFont.Weight = 500
				prims = appendDayNumber(prims, c, cs, numFont, RGBA(p.Text, 0.62))
			}
		})

	prims = append(prims, TextRun{
		Text: fmt.Sprintf("%dd left   •   %.1f%%",
			snap.DaysRemainingInMonth(), snap.MonthProgressPercent()),
		X:        w / 2,
		Y:        subtitleY,
		Color:    Opaque(p.Text),
		Font:     FontSpec{Family: uiFont, Size: float64(subtitleFont), Weight: 600},
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	})

	return appendCaption(prims, p, w, h, float64(spec.captionFont.px(wi)))
}
