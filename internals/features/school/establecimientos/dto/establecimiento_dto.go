// dto/establecimiento_dto.go
package dto

import (
	"time"

	"aulapro_backend/internals/features/school/establecimientos/model"

	"github.com/google/uuid"
)

/* ========== REQUEST DTOs ========== */

type CreateEstablecimientoRequest struct {
	EstablecimientoNombre      string  `json:"establecimiento_nombre"       form:"establecimiento_nombre"       validate:"required,min=2,max=160"`
	EstablecimientoSlug        string  `json:"establecimiento_slug"         form:"establecimiento_slug"         validate:"omitempty,min=2,max=160"`
	EstablecimientoDireccion   *string `json:"establecimiento_direccion"    form:"establecimiento_direccion"    validate:"omitempty,max=255"`
	EstablecimientoSitioWeb    *string `json:"establecimiento_sitio_web"    form:"establecimiento_sitio_web"    validate:"omitempty,url,max=255"`
	EstablecimientoGafeteAncho *int    `json:"establecimiento_gafete_ancho" form:"establecimiento_gafete_ancho" validate:"omitempty,min=500,max=1800"`
	EstablecimientoGafeteAlto  *int    `json:"establecimiento_gafete_alto"  form:"establecimiento_gafete_alto"  validate:"omitempty,min=300,max=1200"`
	EstablecimientoIsActive    *bool   `json:"establecimiento_is_active"    form:"establecimiento_is_active"`
}

type UpdateEstablecimientoRequest struct {
	EstablecimientoNombre      *string `json:"establecimiento_nombre"       form:"establecimiento_nombre"       validate:"omitempty,min=2,max=160"`
	EstablecimientoSlug        *string `json:"establecimiento_slug"         form:"establecimiento_slug"         validate:"omitempty,min=2,max=160"`
	EstablecimientoDireccion   *string `json:"establecimiento_direccion"    form:"establecimiento_direccion"    validate:"omitempty,max=255"`
	EstablecimientoSitioWeb    *string `json:"establecimiento_sitio_web"    form:"establecimiento_sitio_web"    validate:"omitempty,url,max=255"`
	EstablecimientoGafeteAncho *int    `json:"establecimiento_gafete_ancho" form:"establecimiento_gafete_ancho" validate:"omitempty,min=500,max=1800"`
	EstablecimientoGafeteAlto  *int    `json:"establecimiento_gafete_alto"  form:"establecimiento_gafete_alto"  validate:"omitempty,min=300,max=1200"`
	EstablecimientoIsActive    *bool   `json:"establecimiento_is_active"    form:"establecimiento_is_active"`
}

type ListEstablecimientoQuery struct {
	ActiveOnly *bool   `query:"active"`
	Search     *string `query:"search"`
}

/* ========== RESPONSE DTO ========== */

type EstablecimientoResponse struct {
	EstablecimientoID            uuid.UUID  `json:"establecimiento_id"`
	EstablecimientoNombre        string     `json:"establecimiento_nombre"`
	EstablecimientoSlug          string     `json:"establecimiento_slug"`
	EstablecimientoDireccion     *string    `json:"establecimiento_direccion,omitempty"`
	EstablecimientoSitioWeb      *string    `json:"establecimiento_sitio_web,omitempty"`
	EstablecimientoBackgroundURL *string    `json:"establecimiento_background_url,omitempty"`
	EstablecimientoGafeteAncho   int        `json:"establecimiento_gafete_ancho"`
	EstablecimientoGafeteAlto    int        `json:"establecimiento_gafete_alto"`
	EstablecimientoIsActive      bool       `json:"establecimiento_is_active"`
	EstablecimientoCreatedAt     time.Time  `json:"establecimiento_created_at"`
	EstablecimientoUpdatedAt     *time.Time `json:"establecimiento_updated_at,omitempty"`
}

func NewEstablecimientoResponse(m *model.EstablecimientoModel) *EstablecimientoResponse {
	if m == nil {
		return nil
	}
	return &EstablecimientoResponse{
		EstablecimientoID:            m.EstablecimientoID,
		EstablecimientoNombre:        m.EstablecimientoNombre,
		EstablecimientoSlug:          m.EstablecimientoSlug,
		EstablecimientoDireccion:     m.EstablecimientoDireccion,
		EstablecimientoSitioWeb:      m.EstablecimientoSitioWeb,
		EstablecimientoBackgroundURL: m.EstablecimientoBackgroundURL,
		EstablecimientoGafeteAncho:   m.EstablecimientoGafeteAncho,
		EstablecimientoGafeteAlto:    m.EstablecimientoGafeteAlto,
		EstablecimientoIsActive:      m.EstablecimientoIsActive,
		EstablecimientoCreatedAt:     m.EstablecimientoCreatedAt,
		EstablecimientoUpdatedAt:     m.EstablecimientoUpdatedAt,
	}
}

func (r *CreateEstablecimientoRequest) ToModel() *model.EstablecimientoModel {
	m := &model.EstablecimientoModel{
		EstablecimientoNombre:      r.EstablecimientoNombre,
		EstablecimientoSlug:        r.EstablecimientoSlug,
		EstablecimientoDireccion:   r.EstablecimientoDireccion,
		EstablecimientoSitioWeb:    r.EstablecimientoSitioWeb,
		EstablecimientoGafeteAncho: 880,
		EstablecimientoGafeteAlto:  565,
		EstablecimientoIsActive:    true,
		EstablecimientoCreatedAt:   time.Now(),
	}
	if r.EstablecimientoGafeteAncho != nil {
		m.EstablecimientoGafeteAncho = *r.EstablecimientoGafeteAncho
	}
	if r.EstablecimientoGafeteAlto != nil {
		m.EstablecimientoGafeteAlto = *r.EstablecimientoGafeteAlto
	}
	if r.EstablecimientoIsActive != nil {
		m.EstablecimientoIsActive = *r.EstablecimientoIsActive
	}
	return m
}

func (r *UpdateEstablecimientoRequest) ApplyToModel(m *model.EstablecimientoModel) {
	if r.EstablecimientoNombre != nil {
		m.EstablecimientoNombre = *r.EstablecimientoNombre
	}
	if r.EstablecimientoSlug != nil {
		m.EstablecimientoSlug = *r.EstablecimientoSlug
	}
	if r.EstablecimientoDireccion != nil {
		m.EstablecimientoDireccion = r.EstablecimientoDireccion
	}
	if r.EstablecimientoSitioWeb != nil {
		m.EstablecimientoSitioWeb = r.EstablecimientoSitioWeb
	}
	if r.EstablecimientoGafeteAncho != nil {
		m.EstablecimientoGafeteAncho = *r.EstablecimientoGafeteAncho
	}
	if r.EstablecimientoGafeteAlto != nil {
		m.EstablecimientoGafeteAlto = *r.EstablecimientoGafeteAlto
	}
	if r.EstablecimientoIsActive != nil {
		m.EstablecimientoIsActive = *r.EstablecimientoIsActive
	}
	now := time.Now()
	m.EstablecimientoUpdatedAt = &now
}
