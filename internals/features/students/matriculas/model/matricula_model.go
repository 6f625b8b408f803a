// model/matricula_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// MatriculaModel representa `matriculas`. La terna (alumno, grado,
// ciclo) es única a nivel de índice; la baja nunca borra la fila,
// sólo cambia el estado.
type MatriculaModel struct {
	MatriculaID uuid.UUID `json:"matricula_id" gorm:"column:matricula_id;type:uuid;default:gen_random_uuid();primaryKey"`

	MatriculaAlumnoID uuid.UUID `json:"matricula_alumno_id" gorm:"column:matricula_alumno_id;type:uuid;not null;index"`
	MatriculaGradoID  uuid.UUID `json:"matricula_grado_id" gorm:"column:matricula_grado_id;type:uuid;not null;index"`
	MatriculaCicloID  uuid.UUID `json:"matricula_ciclo_id" gorm:"column:matricula_ciclo_id;type:uuid;not null;index"`

	MatriculaEstado string `json:"matricula_estado" gorm:"column:matricula_estado;type:varchar(20);not null;default:activo"`

	MatriculaCreatedAt time.Time  `json:"matricula_created_at" gorm:"column:matricula_created_at;not null;autoCreateTime"`
	MatriculaUpdatedAt *time.Time `json:"matricula_updated_at,omitempty" gorm:"column:matricula_updated_at"`
}

func (MatriculaModel) TableName() string {
	return "matriculas"
}

func EstadoValido(s string) bool {
	return s == EstadoActivo || s == EstadoInactivo
}
