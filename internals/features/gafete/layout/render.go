package layout

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DatosGafete son los textos ya resueltos del alumno, grado y
// establecimiento. El motor no consulta la DB: todo llega por valor.
type DatosGafete struct {
	Nombres          string
	Apellidos        string
	CodigoAlumno     string
	Grado            string
	GradoDescripcion string
	SitioWeb         string
	Telefono         string
	CUI              string
	Establecimiento  string
}

// Assets son los binarios opcionales. Cualquier asset ausente o corrupto
// se ignora y el render continúa.
type Assets struct {
	Fondo []byte
	Foto  []byte
	Logo  []byte
}

const (
	logoMaxLado = 170
	logoOffsetX = 24
	logoOffsetY = 16

	jpegCalidad = 95
)

// RenderGafete compone el gafete y lo codifica como JPEG. Es una función
// pura de sus entradas; segura para llamadas concurrentes.
func RenderGafete(ly Layout, datos DatosGafete, assets Assets) ([]byte, error) {
	w, h := ly.Canvas.Width, ly.Canvas.Height
	canvas := imaging.New(w, h, color.White)

	// 1) fondo: cover-fit (recorta el sobrante, nunca estira); best effort
	if fondo, ok := decodeImage(assets.Fondo); ok {
		filled := imaging.Fill(fondo, w, h, imaging.Center, imaging.Lanczos)
		canvas = imaging.Paste(canvas, filled, image.Pt(0, 0))
	}

	// 2) foto con máscara y borde
	if item, ok := ly.Items[CampoPhoto]; ok && ly.Habilitado(CampoPhoto) && item.Visible {
		if foto, okFoto := decodeImage(assets.Foto); okFoto {
			dibujarFoto(canvas, item, foto)
		}
	}

	// 3) campos de texto en orden estable
	for _, campo := range Campos {
		if campo == CampoPhoto {
			continue
		}
		item, ok := ly.Items[campo]
		if !ok || !ly.Habilitado(campo) || !item.Visible {
			continue
		}
		texto := textoCampo(campo, datos)
		if texto == "" {
			continue // sin placeholder para valores vacíos
		}
		dibujarTexto(canvas, item, texto)
	}

	// 4) logotipo institucional, siempre encima de todo
	if logo, ok := decodeImage(assets.Logo); ok {
		thumb := imaging.Fit(logo, logoMaxLado, logoMaxLado, imaging.Lanczos)
		canvas = imaging.Paste(canvas, thumb, image.Pt(logoOffsetX, logoOffsetY))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(jpegCalidad)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// textoCampo mapea campo → atributo de los datos. Los campos opcionales
// ausentes degradan a vacío (se omiten) o a su glifo fijo; nunca fallan.
func textoCampo(campo Campo, d DatosGafete) string {
	switch campo {
	case CampoNombres:
		return d.Nombres
	case CampoApellidos:
		return d.Apellidos
	case CampoCodigoAlumno:
		return d.CodigoAlumno
	case CampoGrado:
		return d.Grado
	case CampoGradoDescripcion:
		return d.GradoDescripcion
	case CampoSitioWeb:
		return d.SitioWeb
	case CampoTelefono:
		return d.Telefono
	case CampoCUI:
		if d.CUI == "" {
			return "—"
		}
		return d.CUI
	case CampoEstablecimiento:
		return d.Establecimiento
	}
	return "-"
}

func decodeImage(data []byte) (image.Image, bool) {
	if len(data) == 0 {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	return img, true
}

// dibujarFoto recorta la foto al box w×h (cover-fit), la enmascara según
// shape y, si corresponde, dibuja detrás un marco del mismo shape
// inflado border_width px por lado.
func dibujarFoto(canvas *image.NRGBA, item Item, foto image.Image) {
	recortada := imaging.Fill(foto, item.W, item.H, imaging.Center, imaging.Lanczos)
	mask := shapeMask(item.W, item.H, item.Shape, item.Radius)

	if item.BorderWidth > 0 {
		bw := item.BorderWidth
		borderMask := shapeMask(item.W+2*bw, item.H+2*bw, item.Shape, item.Radius+bw)
		borderColor := parseHexColor(item.BorderColor)
		rect := image.Rect(item.X-bw, item.Y-bw, item.X+item.W+bw, item.Y+item.H+bw)
		draw.DrawMask(canvas, rect, image.NewUniform(borderColor), image.Point{}, borderMask, image.Point{}, draw.Over)
	}

	rect := image.Rect(item.X, item.Y, item.X+item.W, item.Y+item.H)
	draw.DrawMask(canvas, rect, recortada, image.Point{}, mask, image.Point{}, draw.Over)
}

func dibujarTexto(canvas *image.NRGBA, item Item, texto string) {
	face := FontFace(item.FontWeight, float64(item.FontSize))
	col := parseHexColor(item.Color)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
	}

	ancho := d.MeasureString(texto)
	x := fixed.I(item.X)
	switch item.Align {
	case AlignCenter:
		x -= ancho / 2
	case AlignRight:
		x -= ancho
	}

	// y es el borde superior del texto; la baseline baja el ascent
	d.Dot = fixed.Point26_6{X: x, Y: fixed.I(item.Y) + face.Metrics().Ascent}
	d.DrawString(texto)
}

// shapeMask construye la máscara alfa: elipse completa para circle,
// rectángulo con esquinas de radio r para rounded.
func shapeMask(w, h int, shape string, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	if shape == ShapeCircle {
		cx, cy := float64(w)/2, float64(h)/2
		rx, ry := cx, cy
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - cy) / ry
				if dx*dx+dy*dy <= 1 {
					mask.SetAlpha(x, y, color.Alpha{A: 255})
				}
			}
		}
		return mask
	}

	r := radius
	if max := min(w, h) / 2; r > max {
		r = max
	}
	rf := float64(r)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// centro del pixel contra el núcleo del rectángulo
			px, py := float64(x)+0.5, float64(y)+0.5
			inside := true
			if px < rf && py < rf {
				inside = dentroEsquina(px, py, rf, rf, rf)
			} else if px > float64(w)-rf && py < rf {
				inside = dentroEsquina(px, py, float64(w)-rf, rf, rf)
			} else if px < rf && py > float64(h)-rf {
				inside = dentroEsquina(px, py, rf, float64(h)-rf, rf)
			} else if px > float64(w)-rf && py > float64(h)-rf {
				inside = dentroEsquina(px, py, float64(w)-rf, float64(h)-rf, rf)
			}
			if inside {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}

func dentroEsquina(px, py, cx, cy, r float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

// parseHexColor asume #RRGGBB ya validado; entrada rara cae a negro.
func parseHexColor(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{A: 255}
	}
	hex := func(b byte) uint8 {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		return 0
	}
	return color.NRGBA{
		R: hex(s[1])<<4 | hex(s[2]),
		G: hex(s[3])<<4 | hex(s[4]),
		B: hex(s[5])<<4 | hex(s[6]),
		A: 255,
	}
}
