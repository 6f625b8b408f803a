// dto/ciclo_dto.go
package dto

import (
	"time"

	"aulapro_backend/internals/features/academics/ciclos/model"

	"github.com/google/uuid"
)

type CreateCicloRequest struct {
	CicloNombre      string     `json:"ciclo_nombre"       form:"ciclo_nombre"       validate:"required,min=2,max=80"`
	CicloFechaInicio *time.Time `json:"ciclo_fecha_inicio" form:"ciclo_fecha_inicio"`
	CicloFechaFin    *time.Time `json:"ciclo_fecha_fin"    form:"ciclo_fecha_fin"`
}

type UpdateCicloRequest struct {
	CicloNombre      *string    `json:"ciclo_nombre"       form:"ciclo_nombre"       validate:"omitempty,min=2,max=80"`
	CicloFechaInicio *time.Time `json:"ciclo_fecha_inicio" form:"ciclo_fecha_inicio"`
	CicloFechaFin    *time.Time `json:"ciclo_fecha_fin"    form:"ciclo_fecha_fin"`
}

func (r *CreateCicloRequest) ToModel(establecimientoID uuid.UUID) *model.CicloEscolarModel {
	return &model.CicloEscolarModel{
		CicloEstablecimientoID: establecimientoID,
		CicloNombre:            r.CicloNombre,
		CicloFechaInicio:       r.CicloFechaInicio,
		CicloFechaFin:          r.CicloFechaFin,
		CicloCreatedAt:         time.Now(),
	}
}

func (r *UpdateCicloRequest) ApplyToModel(m *model.CicloEscolarModel) {
	if r.CicloNombre != nil {
		m.CicloNombre = *r.CicloNombre
	}
	if r.CicloFechaInicio != nil {
		m.CicloFechaInicio = r.CicloFechaInicio
	}
	if r.CicloFechaFin != nil {
		m.CicloFechaFin = r.CicloFechaFin
	}
	now := time.Now()
	m.CicloUpdatedAt = &now
}
