// model/grado_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GradoModel representa `grados`. Siempre cuelga de un establecimiento;
// la carrera es opcional (grados de primaria no tienen carrera).
type GradoModel struct {
	GradoID uuid.UUID `json:"grado_id" gorm:"column:grado_id;type:uuid;default:gen_random_uuid();primaryKey"`

	GradoEstablecimientoID uuid.UUID  `json:"grado_establecimiento_id" gorm:"column:grado_establecimiento_id;type:uuid;not null;index"`
	GradoCarreraID         *uuid.UUID `json:"grado_carrera_id,omitempty" gorm:"column:grado_carrera_id;type:uuid;index"`

	GradoNombre      string  `json:"grado_nombre" gorm:"column:grado_nombre;type:varchar(120);not null"`
	GradoDescripcion *string `json:"grado_descripcion,omitempty" gorm:"column:grado_descripcion;type:varchar(255)"`
	GradoJornada     *string `json:"grado_jornada,omitempty" gorm:"column:grado_jornada;type:varchar(40)"`
	GradoSeccion     *string `json:"grado_seccion,omitempty" gorm:"column:grado_seccion;type:varchar(10)"`
	GradoIsActive    bool    `json:"grado_is_active" gorm:"column:grado_is_active;not null;default:true"`

	GradoCreatedAt time.Time  `json:"grado_created_at" gorm:"column:grado_created_at;not null;autoCreateTime"`
	GradoUpdatedAt *time.Time `json:"grado_updated_at,omitempty" gorm:"column:grado_updated_at"`
	GradoDeletedAt *time.Time `json:"grado_deleted_at,omitempty" gorm:"column:grado_deleted_at"`
}

func (GradoModel) TableName() string {
	return "grados"
}
