// dto/grado_dto.go
package dto

import (
	"time"

	"aulapro_backend/internals/features/academics/grados/model"

	"github.com/google/uuid"
)

type CreateGradoRequest struct {
	GradoCarreraID   *uuid.UUID `json:"grado_carrera_id"   form:"grado_carrera_id"`
	GradoNombre      string     `json:"grado_nombre"       form:"grado_nombre"       validate:"required,min=1,max=120"`
	GradoDescripcion *string    `json:"grado_descripcion"  form:"grado_descripcion"  validate:"omitempty,max=255"`
	GradoJornada     *string    `json:"grado_jornada"      form:"grado_jornada"      validate:"omitempty,max=40"`
	GradoSeccion     *string    `json:"grado_seccion"      form:"grado_seccion"      validate:"omitempty,max=10"`
	GradoIsActive    *bool      `json:"grado_is_active"    form:"grado_is_active"`
}

type UpdateGradoRequest struct {
	GradoCarreraID   *uuid.UUID `json:"grado_carrera_id"   form:"grado_carrera_id"`
	GradoNombre      *string    `json:"grado_nombre"       form:"grado_nombre"       validate:"omitempty,min=1,max=120"`
	GradoDescripcion *string    `json:"grado_descripcion"  form:"grado_descripcion"  validate:"omitempty,max=255"`
	GradoJornada     *string    `json:"grado_jornada"      form:"grado_jornada"      validate:"omitempty,max=40"`
	GradoSeccion     *string    `json:"grado_seccion"      form:"grado_seccion"      validate:"omitempty,max=10"`
	GradoIsActive    *bool      `json:"grado_is_active"    form:"grado_is_active"`
}

func (r *CreateGradoRequest) ToModel(establecimientoID uuid.UUID) *model.GradoModel {
	m := &model.GradoModel{
		GradoEstablecimientoID: establecimientoID,
		GradoCarreraID:         r.GradoCarreraID,
		GradoNombre:            r.GradoNombre,
		GradoDescripcion:       r.GradoDescripcion,
		GradoJornada:           r.GradoJornada,
		GradoSeccion:           r.GradoSeccion,
		GradoIsActive:          true,
		GradoCreatedAt:         time.Now(),
	}
	if r.GradoIsActive != nil {
		m.GradoIsActive = *r.GradoIsActive
	}
	return m
}

func (r *UpdateGradoRequest) ApplyToModel(m *model.GradoModel) {
	if r.GradoCarreraID != nil {
		m.GradoCarreraID = r.GradoCarreraID
	}
	if r.GradoNombre != nil {
		m.GradoNombre = *r.GradoNombre
	}
	if r.GradoDescripcion != nil {
		m.GradoDescripcion = r.GradoDescripcion
	}
	if r.GradoJornada != nil {
		m.GradoJornada = r.GradoJornada
	}
	if r.GradoSeccion != nil {
		m.GradoSeccion = r.GradoSeccion
	}
	if r.GradoIsActive != nil {
		m.GradoIsActive = *r.GradoIsActive
	}
	now := time.Now()
	m.GradoUpdatedAt = &now
}
