package render

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// NormalizeHex приводит цвет к шестизначной hex-форме без решётки.
// Некорректное значение заменяется безопасным непрозрачным белым.
func NormalizeHex(s string) string {
	safe := strings.TrimPrefix(s, "#")
	if !hexPattern.MatchString(safe) {
		return "FFFFFF"
	}
	return strings.ToUpper(safe)
}

// RGBA переводит hex-цвет в color.NRGBA с заданной прозрачностью.
// Для некорректного hex возвращается белый с той же прозрачностью,
// рендер никогда не падает из-за цвета.
func RGBA(hex string, alpha float64) color.NRGBA {
	safe := strings.TrimPrefix(hex, "#")
	if !hexPattern.MatchString(safe) {
		safe = "FFFFFF"
	}
	r, _ := strconv.ParseUint(safe[0:2], 16, 8)
	g, _ := strconv.ParseUint(safe[2:4], 16, 8)
	b, _ := strconv.ParseUint(safe[4:6], 16, 8)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: alphaByte(alpha)}
}

// Opaque возвращает непрозрачный цвет для hex-строки.
func Opaque(hex string) color.NRGBA {
	return RGBA(hex, 1)
}

func alphaByte(alpha float64) uint8 {
	if alpha <= 0 {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(alpha*255 + 0.5)
}
