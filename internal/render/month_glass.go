package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

var glassSpec = monthStyleSpec{
	widthFrac:      0.86,
	verticalOffset: 0.06,
	longHeaders:    false,
	titleFont:      sizeRule{24, 24},
	dayNameFont:    sizeRule{12, 70},
	dateFont:       sizeRule{18, 36},
	subtitleFont:   sizeRule{18, 44},
	captionFont:    sizeRule{32, 22},
}

// layoutMonthGlass — стиль «glass»: полупрозрачная скруглённая карточка
// с сеткой месяца, бейджем завершённости и строкой статистики, поверх
// мягкого радиального свечения акцентным цветом.
func layoutMonthGlass(p Params, snap calendar.Snapshot, m Measurer) []Primitive {
	spec := glassSpec
	w, h := float64(p.Width), float64(p.Height)
	wi := p.Width
	rows := monthRows(snap.DaysInMonth, snap.FirstWeekday)

	titleFont := spec.titleFont.px(wi)
	badgeFont := max(14, wi/52)
	dayNameFont := spec.dayNameFont.px(wi)
	dateFont := spec.dateFont.px(wi)
	subtitleFont := spec.subtitleFont.px(wi)

	cardWidth := math.Round(w * spec.widthFrac)
	cardPaddingX := max(14, wi/40)
	cardRadius := max(20, wi/36)
	cellGap := max(3, wi/190)
	cellSize := (int(cardWidth) - cardPaddingX*2 - cellGap*(monthColumns-1)) / monthColumns
	gridWidth := monthColumns*cellSize + cellGap*(monthColumns-1)
	gridHeight := rows*cellSize + cellGap*(rows-1)
	cellRadius := max(6, int(float64(cellSize)*0.28))

	topPadding := max(18, wi/42)
	betweenGap := max(10, wi/80)
	bottomPadding := max(18, wi/42)
	badgeHeight := max(28, wi/42)
	dayHeaderHeight := dayNameFont + max(8, wi/120)

	cardHeight := topPadding + titleFont + betweenGap + badgeHeight + betweenGap +
		dayHeaderHeight + betweenGap + gridHeight + betweenGap + subtitleFont + bottomPadding

	cardX := (w - cardWidth) / 2
	cardY := (h-float64(cardHeight))/2 + spec.verticalOffset*h
	gridStartX := cardX + (cardWidth-float64(gridWidth))/2

	titleCenterY := cardY + float64(topPadding) + float64(titleFont)/2
	badgeY := cardY + float64(topPadding+titleFont+betweenGap)
	headerY := badgeY + float64(badgeHeight+betweenGap)
	gridStartY := headerY + float64(dayHeaderHeight+betweenGap)
	subtitleY := gridStartY + float64(gridHeight+betweenGap)

	prims := []Primitive{
		FilledRect{X: 0, Y: 0, W: w, H: h, Color: Opaque(p.Background)},
	}

	// Фоновое свечение: центр чуть выше середины, радиус — 58% расстояния
	// до дальнего угла.
	glowCX, glowCY := w/2, 0.45*h
	glowR := 0.58 * math.Hypot(w/2, 0.55*h)
	prims = append(prims, RadialGlow{CX: glowCX, CY: glowCY, R: glowR, Color: RGBA(p.Accent, 0.14)})

	// Карточка: вертикальный градиент из цвета текста на низкой
	// прозрачности плюс тонкая обводка.
	prims = append(prims,
		GradientRoundedRect{
			X: cardX, Y: cardY, W: cardWidth, H: float64(cardHeight), Radius: float64(cardRadius),
			Top: RGBA(p.Text, 0.10), Bottom: RGBA(p.Text, 0.04),
		},
		StrokedRoundedRect{
			X: cardX, Y: cardY, W: cardWidth, H: float64(cardHeight), Radius: float64(cardRadius),
			Width: math.Max(1, w/640), Color: RGBA(p.Text, 0.18),
		},
	)

	titleSpec := FontSpec{Family: uiFont, Size: float64(titleFont), Weight: 600}
	prims = append(prims, TextRun{
		Text:     fmt.Sprintf("%s %d", snap.MonthNameShort, snap.Year),
		X:        w / 2,
		Y:        titleCenterY,
		Color:    Opaque(p.Filled),
		Font:     titleSpec,
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	})

	// Бейдж завершённости: ширина от реально измеренного текста, но не
	// уже трети карточки.
	badgeText := fmt.Sprintf("%d/%d complete", snap.DayOfMonth, snap.DaysInMonth)
	badgeFontSpec := FontSpec{Family: uiFont, Size: float64(badgeFont), Weight: 600}
	badgePad := float64(max(22, wi/54))
	badgeWidth := math.Max(cardWidth*0.34, m.Measure(badgeText, badgeFontSpec)+badgePad)
	badgeX := (w - badgeWidth) / 2
	prims = append(prims,
		FilledRoundedRect{
			X: badgeX, Y: badgeY, W: badgeWidth, H: float64(badgeHeight),
			Radius: float64(badgeHeight) / 2, Color: RGBA(p.Accent, 0.2),
		},
		StrokedRoundedRect{
			X: badgeX, Y: badgeY, W: badgeWidth, H: float64(badgeHeight),
			Radius: float64(badgeHeight) / 2, Width: 1, Color: RGBA(p.Accent, 0.5),
		},
		TextRun{
			Text: badgeText, X: w / 2, Y: badgeY + float64(badgeHeight)/2,
			Color: Opaque(p.Accent), Font: badgeFontSpec, Align: AlignCenter, Baseline: BaselineMiddle,
		},
	)

	headerFontSpec := FontSpec{Family: uiFont, Size: float64(dayNameFont), Weight: 600}
	prims = appendHeaderRow(prims, spec, gridStartX, headerY+float64(dayHeaderHeight)/2,
		float64(cellSize), float64(cellGap), headerFontSpec,
		RGBA(p.Text, 0.68), RGBA(p.Accent, 0.86))

	cs := float64(cellSize)
	cr := float64(cellRadius)
	dateFontSpec := FontSpec{Family: uiFont, Size: float64(dateFont)}
	forEachCell(rows, snap.FirstWeekday, snap.DaysInMonth, snap.DayOfMonth,
		gridStartX, gridStartY, cs, float64(cellGap), func(c cellVisit) {
			if !c.Valid {
				// Плитка-заглушка вне месяца: едва заметная, без номера.
				prims = append(prims,
					FilledRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Color: RGBA(p.Text, 0.02)},
					StrokedRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Width: 1, Color: RGBA(p.Text, 0.04)},
				)
				return
			}

			numFont := dateFontSpec
			switch c.State {
			case dayCurrent:
				glowR := cs/2 + float64(max(18, wi/70))
				prims = append(prims,
					RadialGlow{CX: c.X + cs/2, CY: c.Y + cs/2, R: glowR, Color: RGBA(p.Highlight, 0.45)},
					GradientRoundedRect{
						X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr,
						Top: Opaque(p.Highlight), Bottom: Opaque(p.Accent),
					},
					StrokedRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Width: 1, Color: RGBA(p.Highlight, 0.94)},
				)
				numFont.Weight = 700
				prims = appendDayNumber(prims, c, cs, numFont, Opaque(p.Background))
			case dayPassed:
				prims = append(prims,
					FilledRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Color: RGBA(p.Filled, 0.2)},
					StrokedRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Width: 1, Color: RGBA(p.Filled, 0.42)},
				)
				numFont.Weight = 600
				prims = appendDayNumber(prims, c, cs, numFont, Opaque(p.Filled))
			default:
				numColor := RGBA(p.Text, 0.62)
				if c.Weekend {
					numColor = RGBA(p.Accent, 0.72)
				}
				prims = append(prims,
					FilledRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Color: RGBA(p.Empty, 0.14)},
					StrokedRoundedRect{X: c.X, Y: c.Y, W: cs, H: cs, Radius: cr, Width: 1, Color: RGBA(p.Text, 0.12)},
				)
				numFont.Weight = 500
				prims = appendDayNumber(prims, c, cs, numFont, numColor)
			}
		})

	daysLeft := snap.DaysRemainingInMonth()
	leftText := fmt.Sprintf("%d days left", daysLeft)
	if p.Width < 700 {
		leftText = fmt.Sprintf("%dd left", daysLeft)
	}
	prims = appendStatsRow(prims, m, statsRow{
		centerX:   w / 2,
		y:         subtitleY + float64(subtitleFont)/2,
		font:      FontSpec{Family: uiFont, Size: float64(subtitleFont), Weight: 500},
		sepMargin: float64(max(10, wi/90)),
		left:      leftText,
		leftColor: Opaque(p.Accent),
		right:     fmt.Sprintf("%.1f%%", snap.MonthProgressPercent()),
		textColor: Opaque(p.Text),
		sepColor:  RGBA(p.Text, 0.8),
	})

	return appendCaption(prims, p, w, h, float64(spec.captionFont.px(wi)))
}

// appendDayNumber рисует номер дня по центру плитки.
func appendDayNumber(prims []Primitive, c cellVisit, cellSize float64, f FontSpec, col color.NRGBA) []Primitive {
	return append(prims, TextRun{
		Text:     fmt.Sprintf("%d", c.DayNumber),
		X:        c.X + cellSize/2,
		Y:        c.Y + cellSize/2,
		Color:    col,
		Font:     f,
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
	})
}
