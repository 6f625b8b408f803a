package layout

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("salida no decodifica: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("formato = %q, want jpeg", format)
	}
	return img
}

func pngUniforme(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

// cercaDe compara con tolerancia por la pérdida del JPEG.
func cercaDe(c color.Color, r, g, b uint8, tol int) bool {
	cr, cg, cb, _ := c.RGBA()
	abs := func(a, b int) int {
		if a > b {
			return a - b
		}
		return b - a
	}
	return abs(int(cr>>8), int(r)) <= tol &&
		abs(int(cg>>8), int(g)) <= tol &&
		abs(int(cb>>8), int(b)) <= tol
}

func TestRenderGafeteDimensiones(t *testing.T) {
	datos := DatosGafete{
		Nombres:   "María José",
		Apellidos: "García López",
		Telefono:  "5555-1234",
	}
	for _, orientacion := range []string{OrientacionH, OrientacionV} {
		t.Run(orientacion, func(t *testing.T) {
			ly := DefaultLayout()
			ly.Canvas = CanvasPorOrientacion(orientacion)

			out, err := RenderGafete(ly, datos, Assets{})
			if err != nil {
				t.Fatalf("RenderGafete: %v", err)
			}
			if len(out) == 0 {
				t.Fatal("salida vacía")
			}
			img := decodeJPEG(t, out)
			b := img.Bounds()
			if b.Dx() != ly.Canvas.Width || b.Dy() != ly.Canvas.Height {
				t.Errorf("dimensiones = %dx%d, want %dx%d", b.Dx(), b.Dy(), ly.Canvas.Width, ly.Canvas.Height)
			}
		})
	}
}

func TestRenderGafeteAssetsCorruptosNoFallan(t *testing.T) {
	ly := DefaultLayout()
	basura := []byte("esto no es una imagen")
	out, err := RenderGafete(ly, DatosGafete{Nombres: "Ana"}, Assets{
		Fondo: basura,
		Foto:  basura,
		Logo:  basura,
	})
	if err != nil {
		t.Fatalf("assets corruptos no deben abortar el render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("salida vacía")
	}
}

func TestRenderGafeteCampoInvisibleNoSeDibuja(t *testing.T) {
	base := DefaultLayout()
	base.EnabledFields = []Campo{CampoTelefono}
	datos := DatosGafete{Telefono: "2222-3333"}

	visible, err := RenderGafete(base, datos, Assets{})
	if err != nil {
		t.Fatal(err)
	}

	oculto := DefaultLayout()
	oculto.EnabledFields = []Campo{CampoTelefono}
	item := oculto.Items[CampoTelefono]
	item.Visible = false
	oculto.Items[CampoTelefono] = item

	invisible, err := RenderGafete(oculto, datos, Assets{})
	if err != nil {
		t.Fatal(err)
	}

	vacio, err := RenderGafete(Layout{
		Canvas: base.Canvas,
		Items:  base.Items,
		// nada habilitado
	}, datos, Assets{})
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(visible, vacio) {
		t.Error("el campo visible no dejó rastro en el render")
	}
	if !bytes.Equal(invisible, vacio) {
		t.Error("visible:false dibujó algo en el canvas")
	}
}

func TestRenderGafeteTextoVacioSeOmite(t *testing.T) {
	ly := DefaultLayout()
	ly.EnabledFields = []Campo{CampoNombres, CampoApellidos, CampoTelefono}

	conTexto, err := RenderGafete(ly, DatosGafete{Nombres: "Pedro"}, Assets{})
	if err != nil {
		t.Fatal(err)
	}
	sinTexto, err := RenderGafete(ly, DatosGafete{}, Assets{})
	if err != nil {
		t.Fatal(err)
	}
	blanco, err := RenderGafete(Layout{Canvas: ly.Canvas, Items: ly.Items}, DatosGafete{}, Assets{})
	if err != nil {
		t.Fatal(err)
	}

	// sin datos, los campos habilitados no dibujan placeholders
	if !bytes.Equal(sinTexto, blanco) {
		t.Error("valores vacíos dibujaron un placeholder")
	}
	if bytes.Equal(conTexto, blanco) {
		t.Error("el texto no se dibujó")
	}
}

func TestRenderGafeteFotoCircularConBorde(t *testing.T) {
	rojo := color.NRGBA{R: 220, A: 255}

	ly := DefaultLayout()
	ly.EnabledFields = []Campo{CampoPhoto}
	ly.Items[CampoPhoto] = Item{
		X: 100, Y: 100, W: 200, H: 200,
		Shape:  ShapeCircle,
		Border: true, BorderWidth: 5, BorderColor: "#00aa00",
		Visible: true,
	}

	out, err := RenderGafete(ly, DatosGafete{}, Assets{
		Foto: pngUniforme(t, 400, 400, rojo),
	})
	if err != nil {
		t.Fatal(err)
	}
	img := decodeJPEG(t, out)

	// centro de la foto: rojo
	if !cercaDe(img.At(200, 200), 220, 0, 0, 40) {
		t.Errorf("centro = %v, want rojo", img.At(200, 200))
	}
	// anillo: 3px arriba del borde superior de la foto, sobre el eje vertical
	if !cercaDe(img.At(200, 97), 0, 170, 0, 40) {
		t.Errorf("anillo = %v, want verde", img.At(200, 97))
	}
	// fuera del footprint total (210x210 centrado): blanco
	if !cercaDe(img.At(200, 88), 255, 255, 255, 40) {
		t.Errorf("fuera del borde = %v, want blanco", img.At(200, 88))
	}
	// borde lateral derecho del anillo
	if !cercaDe(img.At(303, 200), 0, 170, 0, 40) {
		t.Errorf("anillo derecho = %v, want verde", img.At(303, 200))
	}
}

// El payload del editor puede pedir anillo sólo con border_width, sin
// mandar el flag border; validado y renderizado debe salir el anillo.
func TestRenderGafeteBordeDesdeValidacion(t *testing.T) {
	rojo := color.NRGBA{R: 220, A: 255}

	ly, err := ValidateLayout(map[string]any{
		"enabled_fields": []any{"photo"},
		"items": map[string]any{
			"photo": map[string]any{
				"x": 100.0, "y": 100.0, "w": 200.0, "h": 200.0,
				"shape":        "circle",
				"border_width": 5.0, "border_color": "#00aa00",
			},
		},
	})
	if err != nil {
		t.Fatalf("ValidateLayout: %v", err)
	}

	out, err := RenderGafete(ly, DatosGafete{}, Assets{
		Foto: pngUniforme(t, 400, 400, rojo),
	})
	if err != nil {
		t.Fatal(err)
	}
	img := decodeJPEG(t, out)

	if !cercaDe(img.At(200, 200), 220, 0, 0, 40) {
		t.Errorf("centro = %v, want rojo", img.At(200, 200))
	}
	if !cercaDe(img.At(200, 97), 0, 170, 0, 40) {
		t.Errorf("anillo = %v, want verde", img.At(200, 97))
	}
}

func TestFontFaceNuncaFalla(t *testing.T) {
	for _, peso := range []string{PesoNormal, PesoNegrita, "900", ""} {
		if face := FontFace(peso, 24); face == nil {
			t.Errorf("FontFace(%q) = nil", peso)
		}
	}
}
