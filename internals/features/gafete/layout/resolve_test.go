package layout

import (
	"reflect"
	"testing"
)

func TestResolveLayoutSinDisenoGuardado(t *testing.T) {
	got := ResolveLayout(nil)
	want := DefaultLayout()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ResolveLayout(nil) = %+v, want default", got)
	}

	// mutar el resultado no debe tocar el default compartido
	got.EnabledFields[0] = CampoCUI
	item := got.Items[CampoNombres]
	item.Color = "#ff0000"
	got.Items[CampoNombres] = item

	fresh := DefaultLayout()
	if fresh.EnabledFields[0] != CampoPhoto {
		t.Errorf("mutación del resultado alteró el default enabled_fields")
	}
	if fresh.Items[CampoNombres].Color != "#090909" {
		t.Errorf("mutación del resultado alteró el default items")
	}
}

func TestResolveLayoutOrientacion(t *testing.T) {
	tests := []struct {
		name        string
		orientation any
		wantW       int
		wantH       int
		wantO       string
	}{
		{name: "vertical", orientation: "V", wantW: 639, wantH: 1011, wantO: "V"},
		{name: "vertical minúscula", orientation: "v", wantW: 639, wantH: 1011, wantO: "V"},
		{name: "horizontal", orientation: "H", wantW: 1011, wantH: 639, wantO: "H"},
		{name: "desconocida queda default", orientation: "diagonal", wantW: 1011, wantH: 639, wantO: "H"},
		{name: "no string queda default", orientation: 42.0, wantW: 1011, wantH: 639, wantO: "H"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLayout(map[string]any{
				"canvas": map[string]any{"orientation": tt.orientation},
			})
			if got.Canvas.Width != tt.wantW || got.Canvas.Height != tt.wantH || got.Canvas.Orientation != tt.wantO {
				t.Errorf("canvas = %+v, want %dx%d %s", got.Canvas, tt.wantW, tt.wantH, tt.wantO)
			}
		})
	}
}

func TestResolveLayoutEnabledFieldsFiltrados(t *testing.T) {
	got := ResolveLayout(map[string]any{
		"enabled_fields": []any{"nombres", "campo_inventado", "telefono"},
	})
	want := []Campo{CampoNombres, CampoTelefono}
	if !reflect.DeepEqual(got.EnabledFields, want) {
		t.Errorf("enabled_fields = %v, want %v", got.EnabledFields, want)
	}
}

func TestResolveLayoutUpdateParcial(t *testing.T) {
	got := ResolveLayout(map[string]any{
		"items": map[string]any{
			"nombres":   map[string]any{"color": "#123456"},
			"inventado": map[string]any{"x": 1.0},
			"telefono":  map[string]any{"x": 10.0, "y": 20.0},
		},
	})

	nombres := got.Items[CampoNombres]
	if nombres.Color != "#123456" {
		t.Errorf("color no aplicado: %q", nombres.Color)
	}
	if nombres.X != 300 || nombres.FontSize != 45 {
		t.Errorf("update parcial pisó atributos no enviados: %+v", nombres)
	}

	tel := got.Items[CampoTelefono]
	if tel.X != 10 || tel.Y != 20 {
		t.Errorf("telefono = %+v, want x=10 y=20", tel)
	}

	if _, existe := got.Items[Campo("inventado")]; existe {
		t.Errorf("llave desconocida no fue ignorada")
	}

	// el mapa de salida siempre es completo
	if len(got.Items) != len(Campos) {
		t.Errorf("items incompleto: %d campos, want %d", len(got.Items), len(Campos))
	}
}

func TestResolveLayoutFormaLegacy(t *testing.T) {
	got := ResolveLayout(map[string]any{
		"fields": []any{
			map[string]any{"key": "telefono_emergencia", "x": 99.0, "font_size": 30.0},
			map[string]any{"key": "nombres", "color": "#abcdef"},
			map[string]any{"key": "desconocido", "x": 1.0},
			"no-es-mapa",
		},
	})

	tel := got.Items[CampoTelefono]
	if tel.X != 99 || tel.FontSize != 30 {
		t.Errorf("alias telefono_emergencia no mapeado: %+v", tel)
	}
	if got.Items[CampoNombres].Color != "#abcdef" {
		t.Errorf("campo legacy nombres no aplicado")
	}
}
