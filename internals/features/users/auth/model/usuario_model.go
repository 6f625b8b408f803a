// model/usuario_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UsuarioModel representa `usuarios`. El establecimiento es opcional:
// un owner no está atado a ninguno.
type UsuarioModel struct {
	UsuarioID uuid.UUID `json:"usuario_id" gorm:"column:usuario_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UsuarioUsername string `json:"usuario_username" gorm:"column:usuario_username;type:varchar(60);unique;not null"`
	UsuarioPassword string `json:"-" gorm:"column:usuario_password;type:varchar(100);not null"`
	UsuarioRole     string `json:"usuario_role" gorm:"column:usuario_role;type:varchar(30);not null;default:lectura"`

	UsuarioEstablecimientoID *uuid.UUID `json:"usuario_establecimiento_id,omitempty" gorm:"column:usuario_establecimiento_id;type:uuid;index"`

	UsuarioIsActive bool `json:"usuario_is_active" gorm:"column:usuario_is_active;not null;default:true"`

	UsuarioCreatedAt time.Time  `json:"usuario_created_at" gorm:"column:usuario_created_at;not null;autoCreateTime"`
	UsuarioUpdatedAt *time.Time `json:"usuario_updated_at,omitempty" gorm:"column:usuario_updated_at"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
