package render

import (
	"image/color"
)

// Три месячных стиля разделяют одну и ту же инвариантную основу:
// классификацию дней, семиколоночную сетку, стопку блоков по вертикали,
// трёхсегментную строку статистики и подпись. Различия описываются
// дескриптором стиля, а хром (карточка, оболочка, линии) остаётся в
// пофайловых раскладках — так стили не расходятся на общей математике.

var (
	dayNamesShort = [7]string{"S", "M", "T", "W", "T", "F", "S"}
	dayNamesLong  = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

const monthColumns = 7

type dayState int

const (
	dayPassed dayState = iota
	dayCurrent
	dayFuture
)

// classifyDay относит день к ровно одному из трёх состояний.
func classifyDay(day, today int) dayState {
	switch {
	case day < today:
		return dayPassed
	case day == today:
		return dayCurrent
	default:
		return dayFuture
	}
}

// monthRows считает количество строк сетки с учётом сдвига первого дня.
func monthRows(totalDays, firstWeekday int) int {
	return (totalDays + firstWeekday + monthColumns - 1) / monthColumns
}

// sizeRule — правило размера «не меньше min, иначе width/div»; все размеры
// шрифтов и отступов месячных стилей заданы в этой форме.
type sizeRule struct {
	min, div int
}

func (r sizeRule) px(width int) int {
	return max(r.min, width/r.div)
}

// monthStyleSpec — дескриптор стиля: числовые правила и выбор наборов,
// отличающие стили друг от друга поверх общей основы.
type monthStyleSpec struct {
	widthFrac      float64 // доля ширины холста под контент
	verticalOffset float64 // сдвиг вниз от центра, доля высоты
	longHeaders    bool    // Sun..Sat вместо S..S
	titleFont      sizeRule
	dayNameFont    sizeRule
	dateFont       sizeRule
	subtitleFont   sizeRule
	captionFont    sizeRule
}

// cellVisit — одна ячейка сетки при обходе. Для индексов вне месяца
// Valid=false, DayNumber при этом лежит вне [1, totalDays].
type cellVisit struct {
	Index, Col, Row int
	DayNumber       int
	Valid           bool
	State           dayState
	Weekend         bool
	X, Y            float64
}

// forEachCell обходит все ячейки сетки построчно и отдаёт каждую в fn
// с заранее вычисленными координатами и классификацией.
func forEachCell(rows, firstWeekday, totalDays, today int,
	startX, startY, cellSize, gap float64, fn func(c cellVisit)) {
	for i := 0; i < rows*monthColumns; i++ {
		col := i % monthColumns
		row := i / monthColumns
		day := i - firstWeekday + 1
		valid := day >= 1 && day <= totalDays

		c := cellVisit{
			Index:     i,
			Col:       col,
			Row:       row,
			DayNumber: day,
			Valid:     valid,
			Weekend:   col == 0 || col == monthColumns-1,
			X:         startX + float64(col)*(cellSize+gap),
			Y:         startY + float64(row)*(cellSize+gap),
		}
		if valid {
			c.State = classifyDay(day, today)
		}
		fn(c)
	}
}

// statsRow — параметры трёхсегментной строки «Nd left • P%». Сегменты
// измеряются и выкладываются встык, вся строка центрируется как единое
// целое.
type statsRow struct {
	centerX, y float64
	font       FontSpec
	sepMargin  float64
	left       string
	leftColor  color.NRGBA
	right      string
	textColor  color.NRGBA
	sepColor   color.NRGBA
}

func appendStatsRow(prims []Primitive, m Measurer, r statsRow) []Primitive {
	const sep = "•"
	leftW := m.Measure(r.left, r.font)
	sepW := m.Measure(sep, r.font)
	rightW := m.Measure(r.right, r.font)

	total := leftW + r.sepMargin + sepW + r.sepMargin + rightW
	x := r.centerX - total/2

	prims = append(prims,
		TextRun{Text: r.left, X: x, Y: r.y, Color: r.leftColor, Font: r.font, Align: AlignLeft, Baseline: BaselineMiddle},
		TextRun{Text: sep, X: x + leftW + r.sepMargin, Y: r.y, Color: r.sepColor, Font: r.font, Align: AlignLeft, Baseline: BaselineMiddle},
		TextRun{Text: r.right, X: x + leftW + r.sepMargin + sepW + r.sepMargin, Y: r.y, Color: r.textColor, Font: r.font, Align: AlignLeft, Baseline: BaselineMiddle},
	)
	return prims
}

// appendCaption добавляет пользовательскую подпись: курсив, по центру,
// базовая линия на 8% высоты от нижнего края. Пустая или выключенная
// подпись не рисуется.
func appendCaption(prims []Primitive, p Params, w, h, fontSize float64) []Primitive {
	if !p.ShowCaption || p.Caption == "" {
		return prims
	}
	return append(prims, TextRun{
		Text:     p.Caption,
		X:        w / 2,
		Y:        h - 0.08*h,
		Color:    Opaque(p.Text),
		Font:     FontSpec{Family: p.Font, Size: fontSize, Weight: 400, Italic: true},
		Align:    AlignCenter,
		Baseline: BaselineAlphabetic,
	})
}

// appendHeaderRow добавляет строку названий дней недели; цвет выходных
// колонок задаётся отдельно.
func appendHeaderRow(prims []Primitive, spec monthStyleSpec, startX, y, cellSize, gap float64,
	font FontSpec, weekday, weekend color.NRGBA) []Primitive {
	names := dayNamesShort
	if spec.longHeaders {
		names = dayNamesLong
	}
	for i, name := range names {
		c := weekday
		if i == 0 || i == monthColumns-1 {
			c = weekend
		}
		prims = append(prims, TextRun{
			Text:     name,
			X:        startX + float64(i)*(cellSize+gap) + cellSize/2,
			Y:        y,
			Color:    c,
			Font:     font,
			Align:    AlignCenter,
			Baseline: BaselineMiddle,
		})
	}
	return prims
}
