// Package calendar содержит чистую календарную арифметику и снимок даты,
// от которых работает движок раскладки. Все функции тотальны и не имеют
// побочных эффектов.
package calendar

import "time"

// IST — фиксированное смещение UTC+5:30. Отрисованный «сегодняшний день»
// всегда считается в этой зоне независимо от зоны сервера.
var IST = time.FixedZone("IST", 5*3600+30*60)

// Snapshot — неизменяемый снимок даты, вычисляется один раз на рендер.
type Snapshot struct {
	Year           int
	Month          time.Month
	DayOfMonth     int
	DayOfYear      int
	DaysInYear     int
	DaysInMonth    int
	FirstWeekday   int // 0=воскресенье .. 6=суббота
	MonthNameShort string
	MonthNameLong  string
}

// Now возвращает снимок для текущего момента, сдвинутого в IST.
func Now() Snapshot {
	return SnapshotAt(time.Now())
}

// SnapshotAt строит снимок для произвольного момента времени.
func SnapshotAt(t time.Time) Snapshot {
	d := t.In(IST)
	return Snapshot{
		Year:           d.Year(),
		Month:          d.Month(),
		DayOfMonth:     d.Day(),
		DayOfYear:      DayOfYear(d),
		DaysInYear:     DaysInYear(d.Year()),
		DaysInMonth:    DaysInMonth(d),
		FirstWeekday:   FirstWeekdayOfMonth(d),
		MonthNameShort: d.Month().String()[:3],
		MonthNameLong:  d.Month().String(),
	}
}

// IsLeapYear проверяет год по григорианскому правилу.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear возвращает 366 для високосного года, иначе 365.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear возвращает порядковый номер дня в году, 1 января — 1.
func DayOfYear(d time.Time) int {
	return d.YearDay()
}

// DaysInMonth возвращает число дней в месяце даты: «нулевой день»
// следующего месяца.
func DaysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}

// FirstWeekdayOfMonth возвращает день недели первого числа месяца даты,
// 0 — воскресенье.
func FirstWeekdayOfMonth(d time.Time) int {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	return int(first.Weekday())
}

// DaysRemainingInYear считает, сколько дней осталось до конца года.
func (s Snapshot) DaysRemainingInYear() int {
	return s.DaysInYear - s.DayOfYear
}

// YearProgressPercent возвращает прогресс года в процентах.
func (s Snapshot) YearProgressPercent() float64 {
	return float64(s.DayOfYear) / float64(s.DaysInYear) * 100
}

// DaysRemainingInMonth считает, сколько дней осталось до конца месяца.
func (s Snapshot) DaysRemainingInMonth() int {
	return s.DaysInMonth - s.DayOfMonth
}

// MonthProgressPercent возвращает прогресс месяца в процентах.
func (s Snapshot) MonthProgressPercent() float64 {
	return float64(s.DayOfMonth) / float64(s.DaysInMonth) * 100
}
