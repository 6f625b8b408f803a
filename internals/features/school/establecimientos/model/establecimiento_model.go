// model/establecimiento_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EstablecimientoModel representa la tabla `establecimientos`, la raíz
// de tenant del sistema. El diseño del gafete se guarda como JSON opaco
// y se resuelve contra el default al momento de usarlo.
type EstablecimientoModel struct {
	EstablecimientoID uuid.UUID `json:"establecimiento_id" gorm:"column:establecimiento_id;type:uuid;default:gen_random_uuid();primaryKey"`

	EstablecimientoNombre    string  `json:"establecimiento_nombre" gorm:"column:establecimiento_nombre;type:varchar(160);unique;not null"`
	EstablecimientoSlug      string  `json:"establecimiento_slug" gorm:"column:establecimiento_slug;type:varchar(160);unique;not null"`
	EstablecimientoDireccion *string `json:"establecimiento_direccion,omitempty" gorm:"column:establecimiento_direccion;type:varchar(255)"`
	EstablecimientoSitioWeb  *string `json:"establecimiento_sitio_web,omitempty" gorm:"column:establecimiento_sitio_web;type:varchar(255)"`

	// fondo del gafete (URL pública en storage)
	EstablecimientoBackgroundURL *string `json:"establecimiento_background_url,omitempty" gorm:"column:establecimiento_background_url;type:text"`

	// tamaño preferido del canvas (el render siempre lo deriva de la
	// orientación; estos límites aplican al editor)
	EstablecimientoGafeteAncho int `json:"establecimiento_gafete_ancho" gorm:"column:establecimiento_gafete_ancho;not null;default:880"`
	EstablecimientoGafeteAlto  int `json:"establecimiento_gafete_alto" gorm:"column:establecimiento_gafete_alto;not null;default:565"`

	EstablecimientoGafeteLayout datatypes.JSON `json:"establecimiento_gafete_layout,omitempty" gorm:"column:establecimiento_gafete_layout;type:jsonb"`

	EstablecimientoIsActive bool `json:"establecimiento_is_active" gorm:"column:establecimiento_is_active;not null;default:true"`

	EstablecimientoCreatedAt time.Time  `json:"establecimiento_created_at" gorm:"column:establecimiento_created_at;not null;autoCreateTime"`
	EstablecimientoUpdatedAt *time.Time `json:"establecimiento_updated_at,omitempty" gorm:"column:establecimiento_updated_at"`
	EstablecimientoDeletedAt *time.Time `json:"establecimiento_deleted_at,omitempty" gorm:"column:establecimiento_deleted_at"`
}

func (EstablecimientoModel) TableName() string {
	return "establecimientos"
}
