package layout

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Rutas de fuentes del sistema, en orden de preferencia por peso.
var fontPaths = map[string][]string{
	PesoNormal: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	},
	PesoNegrita: {
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	},
}

var (
	fontMu    sync.Mutex
	fontCache = map[string]*opentype.Font{}
)

// parsedFont devuelve la fuente parseada para el peso pedido. Si ninguna
// ruta del sistema carga, cae a la fuente Go embebida del mismo peso.
func parsedFont(weight string) *opentype.Font {
	if weight != PesoNegrita {
		weight = PesoNormal
	}

	fontMu.Lock()
	defer fontMu.Unlock()

	if f, ok := fontCache[weight]; ok {
		return f
	}

	for _, path := range fontPaths[weight] {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := opentype.Parse(data); err == nil {
			fontCache[weight] = f
			return f
		}
	}

	embedded := goregular.TTF
	if weight == PesoNegrita {
		embedded = gobold.TTF
	}
	f, err := opentype.Parse(embedded)
	if err != nil {
		// la fuente embebida siempre parsea; nil marca el último recurso
		fontCache[weight] = nil
		return nil
	}
	fontCache[weight] = f
	return f
}

// FontFace devuelve una face lista para dibujar. Nunca falla: el último
// recurso es la fuente bitmap mínima embebida.
func FontFace(weight string, size float64) font.Face {
	parsed := parsedFont(weight)
	if parsed == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
