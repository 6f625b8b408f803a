// dto/carrera_dto.go
package dto

import (
	"time"

	"aulapro_backend/internals/features/academics/carreras/model"

	"github.com/google/uuid"
)

type CreateCarreraRequest struct {
	CarreraNombre      string  `json:"carrera_nombre"      form:"carrera_nombre"      validate:"required,min=2,max=160"`
	CarreraDescripcion *string `json:"carrera_descripcion" form:"carrera_descripcion" validate:"omitempty,max=2000"`
	CarreraIsActive    *bool   `json:"carrera_is_active"   form:"carrera_is_active"`
}

type UpdateCarreraRequest struct {
	CarreraNombre      *string `json:"carrera_nombre"      form:"carrera_nombre"      validate:"omitempty,min=2,max=160"`
	CarreraDescripcion *string `json:"carrera_descripcion" form:"carrera_descripcion" validate:"omitempty,max=2000"`
	CarreraIsActive    *bool   `json:"carrera_is_active"   form:"carrera_is_active"`
}

func (r *CreateCarreraRequest) ToModel(establecimientoID uuid.UUID) *model.CarreraModel {
	m := &model.CarreraModel{
		CarreraEstablecimientoID: establecimientoID,
		CarreraNombre:            r.CarreraNombre,
		CarreraDescripcion:       r.CarreraDescripcion,
		CarreraIsActive:          true,
		CarreraCreatedAt:         time.Now(),
	}
	if r.CarreraIsActive != nil {
		m.CarreraIsActive = *r.CarreraIsActive
	}
	return m
}

func (r *UpdateCarreraRequest) ApplyToModel(m *model.CarreraModel) {
	if r.CarreraNombre != nil {
		m.CarreraNombre = *r.CarreraNombre
	}
	if r.CarreraDescripcion != nil {
		m.CarreraDescripcion = r.CarreraDescripcion
	}
	if r.CarreraIsActive != nil {
		m.CarreraIsActive = *r.CarreraIsActive
	}
	now := time.Now()
	m.CarreraUpdatedAt = &now
}
