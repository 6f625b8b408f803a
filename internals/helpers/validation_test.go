package helper

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestValidationMap(t *testing.T) {
	type form struct {
		Nombre string `validate:"required,min=2"`
		Correo string `validate:"omitempty,email"`
	}
	v := validator.New()

	t.Run("errores por campo", func(t *testing.T) {
		err := v.Struct(form{Correo: "no-es-correo"})
		got := ValidationMap(err)
		if _, ok := got["nombre"]; !ok {
			t.Errorf("falta el campo nombre: %v", got)
		}
		if _, ok := got["correo"]; !ok {
			t.Errorf("falta el campo correo: %v", got)
		}
	})

	t.Run("error genérico cae en _", func(t *testing.T) {
		got := ValidationMap(errors.New("boom"))
		if msgs, ok := got["_"]; !ok || len(msgs) != 1 || msgs[0] != "boom" {
			t.Errorf("ValidationMap genérico = %v", got)
		}
	})
}
