package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap convierte errores de go-playground/validator al mapa
// campo → mensajes que usa JsonValidationError.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "es obligatorio"
		case "min":
			msg = "es demasiado corto o pequeño (min=" + fe.Param() + ")"
		case "max":
			msg = "es demasiado largo o grande (max=" + fe.Param() + ")"
		case "email":
			msg = "no es un correo válido"
		case "url":
			msg = "no es una URL válida"
		case "uuid":
			msg = "no es un UUID válido"
		case "oneof":
			msg = "debe ser uno de: " + fe.Param()
		default:
			msg = "no cumple la regla " + fe.Tag()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
