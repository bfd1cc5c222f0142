package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/wallpaper-generator/internal/calendar"
)

// stubMeasurer дает предсказуемую ширину текста для тестов раскладки.
type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, spec FontSpec) float64 {
	return float64(len([]rune(text))) * spec.Size * 0.6
}

func TestYearGridLayout(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		totalDays int
		check     func(t *testing.T, g YearGrid)
	}{
		{
			name: "опорная геометрия 1000x2000",
			params: func() Params {
				p := DefaultParams()
				p.Width, p.Height, p.Radius, p.Spacing = 1000, 2000, 10, 5
				return p
			}(),
			totalDays: 365,
			check: func(t *testing.T, g YearGrid) {
				assert.Equal(t, 25, g.CellSize)
				assert.Equal(t, 34, g.Columns)
				assert.Equal(t, 11, g.Rows)
				assert.InDelta(t, 845, g.GridWidth, 1e-9)
				assert.InDelta(t, 77.5, g.OffsetX, 1e-9)
			},
		},
		{
			name: "патологически малая ширина дает минимум одну колонку",
			params: func() Params {
				p := DefaultParams()
				p.Width, p.Radius, p.Spacing = 10, 40, 10
				return p
			}(),
			totalDays: 365,
			check: func(t *testing.T, g YearGrid) {
				assert.Equal(t, 1, g.Columns)
				assert.Equal(t, 365, g.Rows)
			},
		},
		{
			name: "високосный год добавляет ячейку, не ломая сетку",
			params: func() Params {
				p := DefaultParams()
				p.Width, p.Height, p.Radius, p.Spacing = 1000, 2000, 10, 5
				return p
			}(),
			totalDays: 366,
			check: func(t *testing.T, g YearGrid) {
				assert.Equal(t, 34, g.Columns)
				assert.Equal(t, 11, g.Rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, YearGridLayout(tt.params, tt.totalDays))
		})
	}
}

// Рост ширины холста никогда не уменьшает число колонок.
func TestYearGridLayout_ColumnsMonotonic(t *testing.T) {
	p := DefaultParams()
	prev := 0
	for w := 50; w <= 3000; w += 25 {
		p.Width = w
		g := YearGridLayout(p, 365)
		require.GreaterOrEqual(t, g.Columns, prev, "width %d", w)
		require.GreaterOrEqual(t, g.Columns, 1)
		prev = g.Columns
	}
}

func TestLayoutYear(t *testing.T) {
	p := DefaultParams()
	snap := calendar.SnapshotAt(time.Date(2024, 7, 4, 12, 0, 0, 0, calendar.IST))
	require.Equal(t, 186, snap.DayOfYear)
	require.Equal(t, 366, snap.DaysInYear)

	prims := Render(ModeYear, p, snap, stubMeasurer{})

	var filled, highlighted, stroked int
	for _, prim := range prims {
		switch c := prim.(type) {
		case FilledCircle:
			if c.Color == Opaque(p.Highlight) {
				highlighted++
			} else {
				filled++
			}
		case StrokedCircle:
			stroked++
		}
	}

	// Каждый день попадает ровно в одно состояние.
	assert.Equal(t, snap.DayOfYear-1, filled)
	assert.Equal(t, 1, highlighted)
	assert.Equal(t, snap.DaysInYear-snap.DayOfYear, stroked)

	// Фон и три сегмента строки статистики.
	_, ok := prims[0].(FilledRect)
	assert.True(t, ok, "first primitive must be the background")
	var texts []string
	for _, prim := range prims {
		if tr, ok := prim.(TextRun); ok {
			texts = append(texts, tr.Text)
		}
	}
	assert.Equal(t, []string{"180d left", "•", "50.8%"}, texts)
}

func TestLayoutYear_CaptionShownOnlyWhenEnabled(t *testing.T) {
	snap := calendar.SnapshotAt(time.Date(2025, 3, 1, 8, 0, 0, 0, calendar.IST))

	p := DefaultParams()
	p.ShowCaption = true
	p.Caption = "keep going"
	withCaption := Render(ModeYear, p, snap, stubMeasurer{})

	p.ShowCaption = false
	withoutCaption := Render(ModeYear, p, snap, stubMeasurer{})

	assert.Len(t, withCaption, len(withoutCaption)+1)
	last, ok := withCaption[len(withCaption)-1].(TextRun)
	require.True(t, ok)
	assert.Equal(t, "keep going", last.Text)
	assert.True(t, last.Font.Italic)
}
