package render

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name       string
		day, today int
		expected   dayState
	}{
		{name: "день до сегодняшнего считается прошедшим", day: 5, today: 10, expected: dayPassed},
		{name: "сегодняшний день выделяется", day: 10, today: 10, expected: dayCurrent},
		{name: "день после сегодняшнего считается будущим", day: 11, today: 10, expected: dayFuture},
		{name: "первый день месяца в первый день", day: 1, today: 1, expected: dayCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyDay(tt.day, tt.today))
		})
	}
}

func TestMonthRows(t *testing.T) {
	tests := []struct {
		name                    string
		totalDays, firstWeekday int
		expected                int
	}{
		{name: "31 день с начала недели", totalDays: 31, firstWeekday: 0, expected: 5},
		{name: "30 дней со сдвигом на среду", totalDays: 30, firstWeekday: 3, expected: 5},
		{name: "31 день со сдвигом на пятницу занимает шесть строк", totalDays: 31, firstWeekday: 5, expected: 6},
		{name: "февраль без сдвига укладывается в четыре строки", totalDays: 28, firstWeekday: 0, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthRows(tt.totalDays, tt.firstWeekday))
		})
	}
}

func TestForEachCell(t *testing.T) {
	const (
		firstWeekday = 3
		totalDays    = 30
		today        = 12
	)
	rows := monthRows(totalDays, firstWeekday)
	var visits []cellVisit
	forEachCell(rows, firstWeekday, totalDays, today, 100, 200, 50, 10, func(c cellVisit) {
		visits = append(visits, c)
	})

	require.Len(t, visits, rows*monthColumns)

	// Ячейки до первого дня месяца пустые.
	for i := 0; i < firstWeekday; i++ {
		assert.False(t, visits[i].Valid, "index %d", i)
	}
	assert.True(t, visits[firstWeekday].Valid)
	assert.Equal(t, 1, visits[firstWeekday].DayNumber)
	assert.Equal(t, totalDays, visits[firstWeekday+totalDays-1].DayNumber)
	for i := firstWeekday + totalDays; i < len(visits); i++ {
		assert.False(t, visits[i].Valid, "index %d", i)
	}

	// Координаты растут с шагом ячейка+зазор.
	assert.InDelta(t, 100, visits[0].X, 1e-9)
	assert.InDelta(t, 100+60, visits[1].X, 1e-9)
	assert.InDelta(t, 200+60, visits[monthColumns].Y, 1e-9)

	// Выходные — крайние колонки.
	for _, c := range visits {
		assert.Equal(t, c.Col == 0 || c.Col == 6, c.Weekend, "index %d", c.Index)
	}

	// Каждый валидный день встречается ровно один раз и ровно один текущий.
	seen := map[int]int{}
	current := 0
	for _, c := range visits {
		if !c.Valid {
			continue
		}
		seen[c.DayNumber]++
		if c.State == dayCurrent {
			current++
		}
	}
	assert.Len(t, seen, totalDays)
	assert.Equal(t, 1, current)
}

func TestAppendStatsRow_CenteredAsUnit(t *testing.T) {
	m := stubMeasurer{}
	font := FontSpec{Family: "sans-serif", Size: 30}
	r := statsRow{
		centerX:   500,
		y:         100,
		font:      font,
		sepMargin: 16,
		left:      "10d left",
		right:     "66.7%",
	}
	prims := appendStatsRow(nil, m, r)
	require.Len(t, prims, 3)

	left := prims[0].(TextRun)
	sep := prims[1].(TextRun)
	right := prims[2].(TextRun)

	leftW := m.Measure(r.left, font)
	sepW := m.Measure("•", font)
	rightW := m.Measure(r.right, font)
	total := leftW + 16 + sepW + 16 + rightW

	assert.InDelta(t, 500-total/2, left.X, 1e-9)
	assert.InDelta(t, left.X+leftW+16, sep.X, 1e-9)
	assert.InDelta(t, sep.X+sepW+16, right.X, 1e-9)
	// Правый край строки симметричен левому относительно центра.
	assert.InDelta(t, 500+total/2, right.X+rightW, 1e-9)
}

func TestRender_MonthStyleDispatch(t *testing.T) {
	snap := calendar.SnapshotAt(time.Date(2025, 6, 15, 12, 0, 0, 0, calendar.IST))

	styles := map[MonthStyle][]Primitive{}
	for _, style := range []MonthStyle{StyleGlass, StyleClassic, StyleBold} {
		p := DefaultParams()
		p.Style = style
		styles[style] = Render(ModeMonth, p, snap, stubMeasurer{})
		require.NotEmpty(t, styles[style])
	}

	// Стили дают заметно разные наборы примитивов.
	assert.NotEqual(t, len(styles[StyleGlass]), len(styles[StyleClassic]))
	assert.NotEqual(t, len(styles[StyleClassic]), len(styles[StyleBold]))

	// Неизвестный стиль рендерится как glass.
	p := DefaultParams()
	p.Style = MonthStyle("unknown")
	assert.Equal(t, len(styles[StyleGlass]), len(Render(ModeMonth, p, snap, stubMeasurer{})))
}

func TestRender_MonthContainsDayNumbers(t *testing.T) {
	snap := calendar.SnapshotAt(time.Date(2025, 6, 15, 12, 0, 0, 0, calendar.IST))
	require.Equal(t, 30, snap.DaysInMonth)

	for _, style := range []MonthStyle{StyleGlass, StyleClassic, StyleBold} {
		p := DefaultParams()
		p.Style = style
		prims := Render(ModeMonth, p, snap, stubMeasurer{})

		days := map[string]bool{}
		for _, prim := range prims {
			if tr, ok := prim.(TextRun); ok {
				days[tr.Text] = true
			}
		}
		for d := 1; d <= snap.DaysInMonth; d++ {
			assert.True(t, days[strconv.Itoa(d)], "style %s day %d", style, d)
		}
	}
}
