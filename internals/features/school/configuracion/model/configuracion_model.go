// model/configuracion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfiguracionGeneralModel es el registro único de la institución.
// El renderer de gafetes lo recibe de forma explícita para el logotipo
// y el nombre institucional.
type ConfiguracionGeneralModel struct {
	ConfiguracionID uuid.UUID `json:"configuracion_id" gorm:"column:configuracion_id;type:uuid;default:gen_random_uuid();primaryKey"`

	ConfiguracionNombre      string  `json:"configuracion_nombre" gorm:"column:configuracion_nombre;type:varchar(160);not null"`
	ConfiguracionDireccion   *string `json:"configuracion_direccion,omitempty" gorm:"column:configuracion_direccion;type:varchar(255)"`
	ConfiguracionTelefono    *string `json:"configuracion_telefono,omitempty" gorm:"column:configuracion_telefono;type:varchar(30);unique"`
	ConfiguracionCorreo      *string `json:"configuracion_correo,omitempty" gorm:"column:configuracion_correo;type:varchar(160)"`
	ConfiguracionSitioWeb    *string `json:"configuracion_sitio_web,omitempty" gorm:"column:configuracion_sitio_web;type:varchar(255)"`
	ConfiguracionLogotipoURL *string `json:"configuracion_logotipo_url,omitempty" gorm:"column:configuracion_logotipo_url;type:text"`

	ConfiguracionCreatedAt time.Time  `json:"configuracion_created_at" gorm:"column:configuracion_created_at;not null;autoCreateTime"`
	ConfiguracionUpdatedAt *time.Time `json:"configuracion_updated_at,omitempty" gorm:"column:configuracion_updated_at"`
}

func (ConfiguracionGeneralModel) TableName() string {
	return "configuracion_general"
}
