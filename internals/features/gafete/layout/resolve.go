package layout

import "strings"

// ResolveLayout produce el layout efectivo de un establecimiento:
// el diseño guardado (JSON opaco, posiblemente parcial o con forma
// legacy) se superpone sobre el default. El resultado siempre es
// completo: todos los campos del vocabulario presentes y un canvas
// concreto derivado de la orientación.
func ResolveLayout(stored map[string]any) Layout {
	base := DefaultLayout()
	if stored == nil {
		return base
	}

	if canvas, ok := stored["canvas"].(map[string]any); ok {
		if o, ok := normalizarOrientacion(canvas["orientation"]); ok {
			base.Canvas = CanvasPorOrientacion(o)
		}
	}

	if fields, ok := stored["enabled_fields"].([]any); ok {
		enabled := make([]Campo, 0, len(fields))
		for _, f := range fields {
			key, ok := f.(string)
			if !ok {
				continue
			}
			if _, existe := base.Items[Campo(key)]; existe {
				enabled = append(enabled, Campo(key))
			}
		}
		base.EnabledFields = enabled
	}

	if items, ok := stored["items"].(map[string]any); ok {
		for key, raw := range items {
			cfg, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			campo := Campo(key)
			item, existe := base.Items[campo]
			if !existe {
				continue // llaves desconocidas se ignoran
			}
			aplicarOverrides(&item, cfg, campo == CampoPhoto)
			base.Items[campo] = item
		}
	} else if fields, ok := stored["fields"].([]any); ok {
		// Forma legacy: lista de objetos {key, ...} en vez de mapa.
		for _, raw := range fields {
			field, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			key, _ := field["key"].(string)
			if key == "telefono_emergencia" {
				key = string(CampoTelefono)
			}
			campo := Campo(key)
			item, existe := base.Items[campo]
			if !existe {
				continue
			}
			aplicarOverridesLegacy(&item, field)
			base.Items[campo] = item
		}
	}

	return base
}

func normalizarOrientacion(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case OrientacionH:
		return OrientacionH, true
	case OrientacionV:
		return OrientacionV, true
	}
	return "", false
}

// aplicarOverrides actualiza en el item solo los atributos presentes en
// cfg (update parcial, nunca replace completo).
func aplicarOverrides(item *Item, cfg map[string]any, esFoto bool) {
	if v, ok := asInt(cfg["x"]); ok {
		item.X = v
	}
	if v, ok := asInt(cfg["y"]); ok {
		item.Y = v
	}
	if v, ok := asBool(cfg["visible"]); ok {
		item.Visible = v
	}

	if esFoto {
		if v, ok := asInt(cfg["w"]); ok {
			item.W = v
		}
		if v, ok := asInt(cfg["h"]); ok {
			item.H = v
		}
		if v, ok := asString(cfg["shape"]); ok {
			item.Shape = v
		}
		if v, ok := asInt(cfg["radius"]); ok {
			item.Radius = v
		}
		if v, ok := asBool(cfg["border"]); ok {
			item.Border = v
		}
		if v, ok := asInt(cfg["border_width"]); ok {
			item.BorderWidth = v
		}
		if v, ok := asString(cfg["border_color"]); ok {
			item.BorderColor = v
		}
		return
	}

	if v, ok := asInt(cfg["font_size"]); ok {
		item.FontSize = v
	}
	if v, ok := asString(cfg["font_weight"]); ok {
		item.FontWeight = v
	}
	if v, ok := asString(cfg["color"]); ok {
		item.Color = v
	}
	if v, ok := asString(cfg["align"]); ok {
		item.Align = v
	}
}

// La forma legacy solo traía atributos de texto.
func aplicarOverridesLegacy(item *Item, field map[string]any) {
	if v, ok := asInt(field["x"]); ok {
		item.X = v
	}
	if v, ok := asInt(field["y"]); ok {
		item.Y = v
	}
	if v, ok := asInt(field["font_size"]); ok {
		item.FontSize = v
	}
	if v, ok := asString(field["font_weight"]); ok {
		item.FontWeight = v
	}
	if v, ok := asString(field["color"]); ok {
		item.Color = v
	}
	if v, ok := asString(field["align"]); ok {
		item.Align = v
	}
	if v, ok := asBool(field["visible"]); ok {
		item.Visible = v
	}
}

// Coerciones para valores que llegan de JSON decodificado (float64)
// o de literales Go en tests (int).

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
