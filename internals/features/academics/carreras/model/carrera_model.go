// model/carrera_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CarreraModel representa `carreras`. Nombre único por establecimiento
// (índice parcial en databases.EnsureIndexes).
type CarreraModel struct {
	CarreraID uuid.UUID `json:"carrera_id" gorm:"column:carrera_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CarreraEstablecimientoID uuid.UUID `json:"carrera_establecimiento_id" gorm:"column:carrera_establecimiento_id;type:uuid;not null;index"`

	CarreraNombre      string  `json:"carrera_nombre" gorm:"column:carrera_nombre;type:varchar(160);not null"`
	CarreraDescripcion *string `json:"carrera_descripcion,omitempty" gorm:"column:carrera_descripcion;type:text"`
	CarreraIsActive    bool    `json:"carrera_is_active" gorm:"column:carrera_is_active;not null;default:true"`

	CarreraCreatedAt time.Time  `json:"carrera_created_at" gorm:"column:carrera_created_at;not null;autoCreateTime"`
	CarreraUpdatedAt *time.Time `json:"carrera_updated_at,omitempty" gorm:"column:carrera_updated_at"`
	CarreraDeletedAt *time.Time `json:"carrera_deleted_at,omitempty" gorm:"column:carrera_deleted_at"`
}

func (CarreraModel) TableName() string {
	return "carreras"
}
