// model/ciclo_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CicloEscolarModel representa `ciclos_escolares`. La unicidad de
// "un solo ciclo activo por establecimiento" la garantiza un índice
// parcial (ver databases.EnsureIndexes), no este modelo.
type CicloEscolarModel struct {
	CicloID uuid.UUID `json:"ciclo_id" gorm:"column:ciclo_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CicloEstablecimientoID uuid.UUID `json:"ciclo_establecimiento_id" gorm:"column:ciclo_establecimiento_id;type:uuid;not null;index"`

	CicloNombre      string     `json:"ciclo_nombre" gorm:"column:ciclo_nombre;type:varchar(80);not null"`
	CicloFechaInicio *time.Time `json:"ciclo_fecha_inicio,omitempty" gorm:"column:ciclo_fecha_inicio;type:date"`
	CicloFechaFin    *time.Time `json:"ciclo_fecha_fin,omitempty" gorm:"column:ciclo_fecha_fin;type:date"`
	CicloEsActivo    bool       `json:"ciclo_es_activo" gorm:"column:ciclo_es_activo;not null;default:false"`

	CicloCreatedAt time.Time  `json:"ciclo_created_at" gorm:"column:ciclo_created_at;not null;autoCreateTime"`
	CicloUpdatedAt *time.Time `json:"ciclo_updated_at,omitempty" gorm:"column:ciclo_updated_at"`
	CicloDeletedAt *time.Time `json:"ciclo_deleted_at,omitempty" gorm:"column:ciclo_deleted_at"`
}

func (CicloEscolarModel) TableName() string {
	return "ciclos_escolares"
}
