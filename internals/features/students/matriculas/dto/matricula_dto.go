// dto/matricula_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatricularRequest struct {
	CodigoPersonal string  `json:"codigo_personal" form:"codigo_personal" validate:"required,min=1,max=40"`
	Estado         *string `json:"estado"          form:"estado"          validate:"omitempty,oneof=activo inactivo"`
}

type ListMatriculaQuery struct {
	CicloID string `query:"ciclo_id"`
	Estado  string `query:"estado"`
}

// MatriculaConAlumno es la fila de listado: matrícula + datos del
// alumno en una sola consulta con JOIN.
type MatriculaConAlumno struct {
	MatriculaID        uuid.UUID  `json:"matricula_id"`
	MatriculaAlumnoID  uuid.UUID  `json:"matricula_alumno_id"`
	MatriculaGradoID   uuid.UUID  `json:"matricula_grado_id"`
	MatriculaCicloID   uuid.UUID  `json:"matricula_ciclo_id"`
	MatriculaEstado    string     `json:"matricula_estado"`
	MatriculaCreatedAt time.Time  `json:"matricula_created_at"`
	MatriculaUpdatedAt *time.Time `json:"matricula_updated_at,omitempty"`

	AlumnoNombres        string  `json:"alumno_nombres"`
	AlumnoApellidos      string  `json:"alumno_apellidos"`
	AlumnoCodigoPersonal string  `json:"alumno_codigo_personal"`
	AlumnoTelefono       string  `json:"alumno_telefono"`
	AlumnoFotoURL        *string `json:"alumno_foto_url,omitempty"`
}
