package layout

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateLayoutSinItems(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "nil", payload: nil},
		{name: "vacío", payload: map[string]any{}},
		{name: "items no es mapa", payload: map[string]any{"items": []any{}}},
		{name: "anidado sin items", payload: map[string]any{"layout": map[string]any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateLayout(tt.payload)
			if err == nil || err.Error() != "layout must include items" {
				t.Errorf("err = %v, want layout must include items", err)
			}
		})
	}
}

func TestValidateLayoutColores(t *testing.T) {
	tests := []struct {
		color   string
		wantErr bool
	}{
		{color: "#000000"},
		{color: "#FFFFFF"},
		{color: "#AbCdEf"},
		{color: "#123456"},
		{color: "#ZZZZZZ", wantErr: true},
		{color: "123456", wantErr: true},
		{color: "#12345", wantErr: true},
		{color: "#1234567", wantErr: true},
		{color: "#12 456", wantErr: true},
		{color: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			_, err := ValidateLayout(map[string]any{
				"items": map[string]any{
					"nombres": map[string]any{"color": tt.color},
				},
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("color %q: err = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLayoutColorInvalidoAnidado(t *testing.T) {
	// payload del editor: envuelto en "layout", orientación V, color basura
	_, err := ValidateLayout(map[string]any{
		"layout": map[string]any{
			"canvas": map[string]any{"orientation": "V"},
			"items": map[string]any{
				"nombres": map[string]any{"color": "#ZZZZZZ"},
			},
		},
	})
	if err == nil {
		t.Fatal("esperaba error de color")
	}
	var le *ErrorLayout
	if !errors.As(err, &le) {
		t.Fatalf("err no es *ErrorLayout: %T", err)
	}
	if le.Campo != CampoNombres || le.Attr != "color" {
		t.Errorf("error = %+v, want campo nombres attr color", le)
	}
	if !strings.Contains(err.Error(), "color") {
		t.Errorf("mensaje sin referencia al color: %q", err.Error())
	}
}

func TestValidateLayoutOrientacion(t *testing.T) {
	tests := []struct {
		orientation string
		wantW       int
		wantH       int
	}{
		{orientation: "H", wantW: 1011, wantH: 639},
		{orientation: "h", wantW: 1011, wantH: 639},
		{orientation: "V", wantW: 639, wantH: 1011},
		{orientation: "v", wantW: 639, wantH: 1011},
		{orientation: "banana", wantW: 1011, wantH: 639},
		{orientation: "", wantW: 1011, wantH: 639},
	}
	for _, tt := range tests {
		t.Run("orientacion "+tt.orientation, func(t *testing.T) {
			got, err := ValidateLayout(map[string]any{
				"canvas": map[string]any{"orientation": tt.orientation, "width": 9999.0, "height": 1.0},
				"items": map[string]any{
					"nombres": map[string]any{},
				},
			})
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			// width/height del cliente jamás se respetan
			if got.Canvas.Width != tt.wantW || got.Canvas.Height != tt.wantH {
				t.Errorf("canvas = %+v, want %dx%d", got.Canvas, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestValidateLayoutFoto(t *testing.T) {
	got, err := ValidateLayout(map[string]any{
		"items": map[string]any{
			"photo": map[string]any{
				"x": 5.0, "y": 6.0,
				"w": 5.0, "h": 5000.0,
				"shape": "circle", "radius": 999.0,
				"border": true, "border_width": 50.0,
				"border_color": "#00ff00",
			},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	foto := got.Items[CampoPhoto]
	if foto.W != 40 {
		t.Errorf("w = %d, want clamp a 40", foto.W)
	}
	if foto.H != got.Canvas.Height {
		t.Errorf("h = %d, want clamp al alto del canvas %d", foto.H, got.Canvas.Height)
	}
	if foto.Radius != 200 {
		t.Errorf("radius = %d, want 200", foto.Radius)
	}
	if foto.BorderWidth != 20 {
		t.Errorf("border_width = %d, want 20", foto.BorderWidth)
	}
	if foto.Shape != ShapeCircle || foto.BorderColor != "#00ff00" {
		t.Errorf("foto = %+v", foto)
	}
}

func TestValidateLayoutFotoBorde(t *testing.T) {
	t.Run("border ausente queda encendido", func(t *testing.T) {
		got, err := ValidateLayout(map[string]any{
			"items": map[string]any{
				"photo": map[string]any{
					"shape": "circle", "w": 200.0, "h": 200.0,
					"border_width": 5.0, "border_color": "#00aa00",
				},
			},
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		foto := got.Items[CampoPhoto]
		if !foto.Border || foto.BorderWidth != 5 {
			t.Errorf("border = %t width = %d, want true/5", foto.Border, foto.BorderWidth)
		}
	})

	t.Run("border false apaga el ancho", func(t *testing.T) {
		got, err := ValidateLayout(map[string]any{
			"items": map[string]any{
				"photo": map[string]any{
					"border": false, "border_width": 5.0,
				},
			},
		})
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		foto := got.Items[CampoPhoto]
		if foto.Border || foto.BorderWidth != 0 {
			t.Errorf("border = %t width = %d, want false/0", foto.Border, foto.BorderWidth)
		}
	})
}

func TestValidateLayoutFotoInvalida(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]any
	}{
		{name: "shape basura", cfg: map[string]any{"shape": "triangle"}},
		{name: "border_color basura", cfg: map[string]any{"border_color": "blanco"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateLayout(map[string]any{
				"items": map[string]any{"photo": tt.cfg},
			})
			if err == nil {
				t.Error("esperaba error de validación")
			}
		})
	}
}

func TestValidateLayoutTextoDefaults(t *testing.T) {
	got, err := ValidateLayout(map[string]any{
		"items": map[string]any{
			"telefono": map[string]any{
				"font_size":   500.0,
				"font_weight": "900",     // inválido → 400
				"align":       "justify", // inválido → left
			},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	tel := got.Items[CampoTelefono]
	if tel.FontSize != 120 {
		t.Errorf("font_size = %d, want clamp a 120", tel.FontSize)
	}
	if tel.FontWeight != PesoNormal {
		t.Errorf("font_weight = %q, want 400", tel.FontWeight)
	}
	if tel.Align != AlignLeft {
		t.Errorf("align = %q, want left", tel.Align)
	}
	if !tel.Visible {
		t.Error("visible ausente debe caer a true")
	}
}

func TestValidateLayoutSinItemsValidos(t *testing.T) {
	_, err := ValidateLayout(map[string]any{
		"items": map[string]any{
			"inventado":      map[string]any{"x": 1.0},
			"otro_inventado": map[string]any{"y": 2.0},
		},
	})
	if err == nil || err.Error() != "no valid items received" {
		t.Errorf("err = %v, want no valid items received", err)
	}
}

func TestValidateLayoutEnabledFields(t *testing.T) {
	got, err := ValidateLayout(map[string]any{
		"enabled_fields": []any{"nombres", "falso", "cui"},
		"items": map[string]any{
			"nombres": map[string]any{},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(got.EnabledFields) != 2 || got.EnabledFields[0] != CampoNombres || got.EnabledFields[1] != CampoCUI {
		t.Errorf("enabled_fields = %v", got.EnabledFields)
	}

	// malformado cae al set default
	got, err = ValidateLayout(map[string]any{
		"enabled_fields": "nombres",
		"items": map[string]any{
			"nombres": map[string]any{},
		},
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(got.EnabledFields) != len(DefaultLayout().EnabledFields) {
		t.Errorf("enabled_fields = %v, want set default", got.EnabledFields)
	}
}
