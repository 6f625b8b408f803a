// dto/alumno_dto.go
package dto

import (
	"strings"
	"time"

	"aulapro_backend/internals/features/students/alumnos/model"

	"github.com/google/uuid"
)

type CreateAlumnoRequest struct {
	AlumnoNombres        string     `json:"alumno_nombres"          form:"alumno_nombres"          validate:"required,min=1,max=120"`
	AlumnoApellidos      string     `json:"alumno_apellidos"        form:"alumno_apellidos"        validate:"required,min=1,max=120"`
	AlumnoCodigoPersonal string     `json:"alumno_codigo_personal"  form:"alumno_codigo_personal"  validate:"required,min=1,max=40"`
	AlumnoCUI            *string    `json:"alumno_cui"              form:"alumno_cui"              validate:"omitempty,max=20"`
	AlumnoTelefono       string     `json:"alumno_telefono"         form:"alumno_telefono"         validate:"required,min=6,max=30"`
	AlumnoDireccion      *string    `json:"alumno_direccion"        form:"alumno_direccion"        validate:"omitempty,max=255"`
	AlumnoFechaNac       *time.Time `json:"alumno_fecha_nacimiento" form:"alumno_fecha_nacimiento"`
}

type UpdateAlumnoRequest struct {
	AlumnoNombres        *string    `json:"alumno_nombres"          form:"alumno_nombres"          validate:"omitempty,min=1,max=120"`
	AlumnoApellidos      *string    `json:"alumno_apellidos"        form:"alumno_apellidos"        validate:"omitempty,min=1,max=120"`
	AlumnoCodigoPersonal *string    `json:"alumno_codigo_personal"  form:"alumno_codigo_personal"  validate:"omitempty,min=1,max=40"`
	AlumnoCUI            *string    `json:"alumno_cui"              form:"alumno_cui"              validate:"omitempty,max=20"`
	AlumnoTelefono       *string    `json:"alumno_telefono"         form:"alumno_telefono"         validate:"omitempty,min=6,max=30"`
	AlumnoDireccion      *string    `json:"alumno_direccion"        form:"alumno_direccion"        validate:"omitempty,max=255"`
	AlumnoFechaNac       *time.Time `json:"alumno_fecha_nacimiento" form:"alumno_fecha_nacimiento"`
	AlumnoIsActive       *bool      `json:"alumno_is_active"        form:"alumno_is_active"`
}

func (r *CreateAlumnoRequest) ToModel(establecimientoID uuid.UUID) *model.AlumnoModel {
	return &model.AlumnoModel{
		AlumnoEstablecimientoID: establecimientoID,
		AlumnoNombres:           strings.TrimSpace(r.AlumnoNombres),
		AlumnoApellidos:         strings.TrimSpace(r.AlumnoApellidos),
		AlumnoCodigoPersonal:    strings.TrimSpace(r.AlumnoCodigoPersonal),
		AlumnoCUI:               r.AlumnoCUI,
		AlumnoTelefono:          strings.TrimSpace(r.AlumnoTelefono),
		AlumnoDireccion:         r.AlumnoDireccion,
		AlumnoFechaNac:          r.AlumnoFechaNac,
		AlumnoIsActive:          true,
		AlumnoCreatedAt:         time.Now(),
	}
}

func (r *UpdateAlumnoRequest) ApplyToModel(m *model.AlumnoModel) {
	if r.AlumnoNombres != nil {
		m.AlumnoNombres = strings.TrimSpace(*r.AlumnoNombres)
	}
	if r.AlumnoApellidos != nil {
		m.AlumnoApellidos = strings.TrimSpace(*r.AlumnoApellidos)
	}
	if r.AlumnoCodigoPersonal != nil {
		m.AlumnoCodigoPersonal = strings.TrimSpace(*r.AlumnoCodigoPersonal)
	}
	if r.AlumnoCUI != nil {
		m.AlumnoCUI = r.AlumnoCUI
	}
	if r.AlumnoTelefono != nil {
		m.AlumnoTelefono = strings.TrimSpace(*r.AlumnoTelefono)
	}
	if r.AlumnoDireccion != nil {
		m.AlumnoDireccion = r.AlumnoDireccion
	}
	if r.AlumnoFechaNac != nil {
		m.AlumnoFechaNac = r.AlumnoFechaNac
	}
	if r.AlumnoIsActive != nil {
		m.AlumnoIsActive = *r.AlumnoIsActive
	}
	now := time.Now()
	m.AlumnoUpdatedAt = &now
}
