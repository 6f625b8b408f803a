// model/alumno_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AlumnoModel representa `alumnos`. El código personal es el
// identificador humano con el que se busca al matricular.
type AlumnoModel struct {
	AlumnoID uuid.UUID `json:"alumno_id" gorm:"column:alumno_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AlumnoEstablecimientoID uuid.UUID `json:"alumno_establecimiento_id" gorm:"column:alumno_establecimiento_id;type:uuid;not null;index"`

	AlumnoNombres        string     `json:"alumno_nombres" gorm:"column:alumno_nombres;type:varchar(120);not null"`
	AlumnoApellidos      string     `json:"alumno_apellidos" gorm:"column:alumno_apellidos;type:varchar(120);not null"`
	AlumnoCodigoPersonal string     `json:"alumno_codigo_personal" gorm:"column:alumno_codigo_personal;type:varchar(40);not null"`
	AlumnoCUI            *string    `json:"alumno_cui,omitempty" gorm:"column:alumno_cui;type:varchar(20)"`
	AlumnoTelefono       string     `json:"alumno_telefono" gorm:"column:alumno_telefono;type:varchar(30);not null"`
	AlumnoDireccion      *string    `json:"alumno_direccion,omitempty" gorm:"column:alumno_direccion;type:varchar(255)"`
	AlumnoFechaNac       *time.Time `json:"alumno_fecha_nacimiento,omitempty" gorm:"column:alumno_fecha_nacimiento;type:date"`
	AlumnoFotoURL        *string    `json:"alumno_foto_url,omitempty" gorm:"column:alumno_foto_url;type:text"`
	AlumnoIsActive       bool       `json:"alumno_is_active" gorm:"column:alumno_is_active;not null;default:true"`

	AlumnoCreatedAt time.Time  `json:"alumno_created_at" gorm:"column:alumno_created_at;not null;autoCreateTime"`
	AlumnoUpdatedAt *time.Time `json:"alumno_updated_at,omitempty" gorm:"column:alumno_updated_at"`
	AlumnoDeletedAt *time.Time `json:"alumno_deleted_at,omitempty" gorm:"column:alumno_deleted_at"`
}

func (AlumnoModel) TableName() string {
	return "alumnos"
}
