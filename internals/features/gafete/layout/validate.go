package layout

import (
	"fmt"
	"regexp"
)

var reHexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ErrorLayout es un error de validación del payload del editor,
// con el campo y atributo ofensivo cuando aplica.
type ErrorLayout struct {
	Campo   Campo
	Attr    string
	Mensaje string
}

func (e *ErrorLayout) Error() string {
	if e.Campo == "" {
		return e.Mensaje
	}
	if e.Attr == "" {
		return fmt.Sprintf("%s: %s", e.Campo, e.Mensaje)
	}
	return fmt.Sprintf("%s.%s: %s", e.Campo, e.Attr, e.Mensaje)
}

func errLayout(campo Campo, attr, format string, args ...any) error {
	return &ErrorLayout{Campo: campo, Attr: attr, Mensaje: fmt.Sprintf(format, args...)}
}

// ValidateLayout sanitiza un payload externo (no confiable) del editor
// de gafetes. Valores claramente inválidos de atributos reconocidos
// fallan de inmediato; atributos ausentes caen a su default en silencio.
//
// Acepta tanto el layout directo como envuelto en {"layout": {...}}.
func ValidateLayout(payload map[string]any) (Layout, error) {
	if payload == nil {
		return Layout{}, &ErrorLayout{Mensaje: "layout must include items"}
	}
	if inner, ok := payload["layout"].(map[string]any); ok {
		payload = inner
	}

	rawItems, ok := payload["items"].(map[string]any)
	if !ok {
		return Layout{}, &ErrorLayout{Mensaje: "layout must include items"}
	}

	out := Layout{Items: map[Campo]Item{}}

	// orientación: cualquier cosa fuera de {H,V} cae a H; las dimensiones
	// salen SIEMPRE de la tabla fija, nunca del cliente.
	orientacion := OrientacionH
	if canvas, ok := payload["canvas"].(map[string]any); ok {
		if o, ok := normalizarOrientacion(canvas["orientation"]); ok {
			orientacion = o
		}
	}
	out.Canvas = CanvasPorOrientacion(orientacion)

	// enabled_fields: filtrado al vocabulario; ausente/malformado cae al
	// set default completo.
	out.EnabledFields = DefaultLayout().EnabledFields
	if fields, ok := payload["enabled_fields"].([]any); ok {
		enabled := make([]Campo, 0, len(fields))
		for _, f := range fields {
			if key, ok := f.(string); ok && CampoValido(key) {
				enabled = append(enabled, Campo(key))
			}
		}
		out.EnabledFields = enabled
	}

	for key, raw := range rawItems {
		if !CampoValido(key) {
			continue // llaves desconocidas se descartan sin error
		}
		cfg, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		campo := Campo(key)

		var (
			item Item
			err  error
		)
		if campo == CampoPhoto {
			item, err = validarFoto(cfg, out.Canvas)
		} else {
			item, err = validarTexto(campo, cfg)
		}
		if err != nil {
			return Layout{}, err
		}
		out.Items[campo] = item
	}

	if len(out.Items) == 0 {
		return Layout{}, &ErrorLayout{Mensaje: "no valid items received"}
	}
	return out, nil
}

func validarFoto(cfg map[string]any, canvas Canvas) (Item, error) {
	item := Item{
		W: 250, H: 350,
		Shape:       ShapeRounded,
		Border:      true,
		BorderColor: "#ffffff",
		Visible:     true,
	}

	if v, ok := asInt(cfg["x"]); ok {
		item.X = v
	}
	if v, ok := asInt(cfg["y"]); ok {
		item.Y = v
	}
	if v, ok := asInt(cfg["w"]); ok {
		item.W = v
	}
	if v, ok := asInt(cfg["h"]); ok {
		item.H = v
	}
	item.W = clamp(item.W, 40, canvas.Width)
	item.H = clamp(item.H, 40, canvas.Height)

	if raw, presente := cfg["shape"]; presente {
		s, _ := asString(raw)
		if s != ShapeRounded && s != ShapeCircle {
			return Item{}, errLayout(CampoPhoto, "shape", "forma inválida %q", raw)
		}
		item.Shape = s
	}

	if v, ok := asInt(cfg["radius"]); ok {
		item.Radius = clamp(v, 0, 200)
	}
	if v, ok := asBool(cfg["border"]); ok {
		item.Border = v
	}
	if v, ok := asInt(cfg["border_width"]); ok {
		item.BorderWidth = clamp(v, 0, 20)
	}
	// border:false apaga el anillo por completo; el render sólo mira el ancho
	if !item.Border {
		item.BorderWidth = 0
	}
	if raw, presente := cfg["border_color"]; presente {
		s, _ := asString(raw)
		if !reHexColor.MatchString(s) {
			return Item{}, errLayout(CampoPhoto, "border_color", "color inválido %q (se espera #RRGGBB)", raw)
		}
		item.BorderColor = s
	}
	if v, ok := asBool(cfg["visible"]); ok {
		item.Visible = v
	}
	return item, nil
}

func validarTexto(campo Campo, cfg map[string]any) (Item, error) {
	item := Item{
		FontSize:   24,
		FontWeight: PesoNormal,
		Color:      "#000000",
		Align:      AlignLeft,
		Visible:    true,
	}

	if v, ok := asInt(cfg["x"]); ok {
		item.X = v
	}
	if v, ok := asInt(cfg["y"]); ok {
		item.Y = v
	}
	if v, ok := asInt(cfg["font_size"]); ok {
		item.FontSize = v
	}
	item.FontSize = clamp(item.FontSize, 10, 120)

	// peso/align malformados NO fallan: caen a su default
	if s, ok := asString(cfg["font_weight"]); ok && (s == PesoNormal || s == PesoNegrita) {
		item.FontWeight = s
	}
	if s, ok := asString(cfg["align"]); ok && (s == AlignLeft || s == AlignCenter || s == AlignRight) {
		item.Align = s
	}

	if raw, presente := cfg["color"]; presente {
		s, _ := asString(raw)
		if !reHexColor.MatchString(s) {
			return Item{}, errLayout(campo, "color", "color inválido %q (se espera #RRGGBB)", raw)
		}
		item.Color = s
	}

	if v, ok := asBool(cfg["visible"]); ok {
		item.Visible = v
	}
	return item, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
