package render

import "github.com/magabrotheeeer/wallpaper-generator/internal/calendar"

// uiFont — семейство для служебного текста (заголовки, подписи, статистика);
// подпись пользователя использует семейство из параметров.
const uiFont = "sans-serif"

// Render выполняет выбранный алгоритм раскладки и возвращает упорядоченный
// список примитивов. Чистая функция: одинаковые входы дают одинаковый
// список, состояние между вызовами не разделяется.
func Render(mode Mode, p Params, snap calendar.Snapshot, m Measurer) []Primitive {
	if mode == ModeMonth {
		switch p.Style {
		case StyleClassic:
			return layoutMonthClassic(p, snap, m)
		case StyleBold:
			return layoutMonthBold(p, snap, m)
		default:
			return layoutMonthGlass(p, snap, m)
		}
	}
	return layoutYear(p, snap, m)
}
