package controller

import (
	"errors"
	"testing"
)

func TestDecidirMatricula(t *testing.T) {
	tests := []struct {
		name               string
		yaExiste           bool
		otrasActivas       int64
		permitirMultiGrado bool
		wantErr            error
	}{
		{
			name: "primera matrícula del ciclo",
		},
		{
			name:         "otro grado activo bloquea",
			otrasActivas: 1,
			wantErr:      errOtroGrado,
		},
		{
			name:               "multi-grado permitido deja pasar",
			otrasActivas:       2,
			permitirMultiGrado: true,
		},
		{
			name:         "fila existente se actualiza aunque haya otras",
			yaExiste:     true,
			otrasActivas: 3,
		},
		{
			name:               "fila existente con multi-grado",
			yaExiste:           true,
			permitirMultiGrado: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decidirMatricula(tt.yaExiste, tt.otrasActivas, tt.permitirMultiGrado)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("decidirMatricula(%t, %d, %t) = %v, want %v",
					tt.yaExiste, tt.otrasActivas, tt.permitirMultiGrado, err, tt.wantErr)
			}
		})
	}
}
