// dto/configuracion_dto.go
package dto

import (
	"time"

	"aulapro_backend/internals/features/school/configuracion/model"
)

type UpsertConfiguracionRequest struct {
	ConfiguracionNombre      string  `json:"configuracion_nombre"       form:"configuracion_nombre"       validate:"required,min=2,max=160"`
	ConfiguracionDireccion   *string `json:"configuracion_direccion"    form:"configuracion_direccion"    validate:"omitempty,max=255"`
	ConfiguracionTelefono    *string `json:"configuracion_telefono"     form:"configuracion_telefono"     validate:"omitempty,max=30"`
	ConfiguracionCorreo      *string `json:"configuracion_correo"       form:"configuracion_correo"       validate:"omitempty,email,max=160"`
	ConfiguracionSitioWeb    *string `json:"configuracion_sitio_web"    form:"configuracion_sitio_web"    validate:"omitempty,url,max=255"`
	ConfiguracionLogotipoURL *string `json:"configuracion_logotipo_url" form:"configuracion_logotipo_url" validate:"omitempty,url"`
}

func (r *UpsertConfiguracionRequest) ApplyToModel(m *model.ConfiguracionGeneralModel) {
	m.ConfiguracionNombre = r.ConfiguracionNombre
	if r.ConfiguracionDireccion != nil {
		m.ConfiguracionDireccion = r.ConfiguracionDireccion
	}
	if r.ConfiguracionTelefono != nil {
		m.ConfiguracionTelefono = r.ConfiguracionTelefono
	}
	if r.ConfiguracionCorreo != nil {
		m.ConfiguracionCorreo = r.ConfiguracionCorreo
	}
	if r.ConfiguracionSitioWeb != nil {
		m.ConfiguracionSitioWeb = r.ConfiguracionSitioWeb
	}
	if r.ConfiguracionLogotipoURL != nil {
		m.ConfiguracionLogotipoURL = r.ConfiguracionLogotipoURL
	}
	now := time.Now()
	m.ConfiguracionUpdatedAt = &now
}
