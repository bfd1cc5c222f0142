// Package fonts хранит реестр шрифтов: встроенные гарнитуры Go как
// безотказная база и опциональные удалённые TTF/OTF-источники из конфига.
// Реестр отдаёт готовые font.Face и реализует измерение текста для
// движка раскладки.
package fonts

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/magabrotheeeer/wallpaper-generator/internal/lib/sl"
	"github.com/magabrotheeeer/wallpaper-generator/internal/render"
)

// Source — удалённый источник шрифта для одного семейства.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type faceKey struct {
	family string
	size   float64
	weight int
	italic bool
}

// Registry — потокобезопасный реестр шрифтов с кешем font.Face.
type Registry struct {
	mu     sync.Mutex
	faces  map[faceKey]font.Face
	remote map[string]*opentype.Font

	regular, bold, italic, mono *opentype.Font
}

// New создаёт реестр: парсит встроенные гарнитуры и пытается загрузить
// удалённые источники. Ошибка загрузки или разбора удалённого шрифта не
// фатальна — семейство молча падает на встроенную гарнитуру.
func New(sources []Source, fetchTimeout time.Duration, log *slog.Logger) (*Registry, error) {
	const op = "fonts.New"

	r := &Registry{
		faces:  make(map[faceKey]font.Face),
		remote: make(map[string]*opentype.Font),
	}

	var err error
	if r.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if r.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if r.italic, err = opentype.Parse(goitalic.TTF); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if r.mono, err = opentype.Parse(gomono.TTF); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := &http.Client{Timeout: fetchTimeout}
	for _, src := range sources {
		f, err := fetchFont(client, src.URL)
		if err != nil {
			log.Warn("failed to load remote font, falling back to embedded",
				slog.String("font", src.Name), sl.Err(err))
			continue
		}
		r.remote[src.Name] = f
		log.Info("remote font loaded", slog.String("font", src.Name))
	}

	return r, nil
}

func fetchFont(client *http.Client, url string) (*opentype.Font, error) {
	const op = "fonts.fetchFont"

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return f, nil
}

// Face возвращает font.Face для спецификации, создавая и кешируя его при
// первом обращении.
func (r *Registry) Face(spec render.FontSpec) font.Face {
	key := faceKey{family: spec.Family, size: spec.Size, weight: spec.Weight, italic: spec.Italic}

	r.mu.Lock()
	defer r.mu.Unlock()

	if face, ok := r.faces[key]; ok {
		return face
	}

	face, err := opentype.NewFace(r.resolve(spec), &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// NewFace для разобранного шрифта не падает на валидных размерах,
		// но на всякий случай отдаём базовую гарнитуру.
		face, _ = opentype.NewFace(r.regular, &opentype.FaceOptions{Size: spec.Size, DPI: 72})
	}
	r.faces[key] = face
	return face
}

// resolve выбирает шрифт: удалённое семейство, если загружено, иначе
// встроенная гарнитура по характеру семейства и начертанию.
func (r *Registry) resolve(spec render.FontSpec) *opentype.Font {
	if f, ok := r.remote[spec.Family]; ok {
		return f
	}
	switch spec.Family {
	case "Roboto Mono", "monospace":
		return r.mono
	}
	if spec.Italic {
		return r.italic
	}
	if spec.Weight >= 600 {
		return r.bold
	}
	return r.regular
}

// Measure возвращает ширину текста в пикселях. Реализует render.Measurer.
func (r *Registry) Measure(text string, spec render.FontSpec) float64 {
	adv := font.MeasureString(r.Face(spec), text)
	return float64(adv) / 64
}
