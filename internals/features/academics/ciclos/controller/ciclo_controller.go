// controller/ciclo_controller.go
package controller

import (
	"strings"
	"time"

	"aulapro_backend/internals/features/academics/ciclos/dto"
	"aulapro_backend/internals/features/academics/ciclos/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CicloController struct {
	DB *gorm.DB
}

func NewCicloController(db *gorm.DB) *CicloController {
	return &CicloController{DB: db}
}

var validate = validator.New()

// CicloActivo devuelve el ciclo activo del establecimiento, o
// gorm.ErrRecordNotFound si no hay ninguno.
func CicloActivo(db *gorm.DB, establecimientoID uuid.UUID) (*model.CicloEscolarModel, error) {
	var m model.CicloEscolarModel
	err := db.
		Where("ciclo_establecimiento_id = ? AND ciclo_es_activo = TRUE AND ciclo_deleted_at IS NULL", establecimientoID).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// POST /api/a/establecimientos/:establecimientoId/ciclos
func (ctrl *CicloController) CreateCiclo(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}

	var req dto.CreateCicloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel(establecimientoID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un ciclo con ese nombre en el establecimiento")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando ciclo")
	}
	return helper.JsonCreated(c, "Ciclo creado", m)
}

// GET /api/a/establecimientos/:establecimientoId/ciclos
func (ctrl *CicloController) ListCiclos(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.CicloEscolarModel{}).
		Where("ciclo_establecimiento_id = ? AND ciclo_deleted_at IS NULL", establecimientoID)
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("lower(ciclo_nombre) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando ciclos")
	}

	var rows []model.CicloEscolarModel
	if err := tx.Order("ciclo_es_activo DESC, ciclo_nombre DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando ciclos")
	}
	return helper.JsonList(c, rows, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /api/a/ciclos/:id
func (ctrl *CicloController) GetCiclo(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ciclo no encontrado")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/ciclos/:id
func (ctrl *CicloController) UpdateCiclo(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ciclo no encontrado")
	}

	var req dto.UpdateCicloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un ciclo con ese nombre en el establecimiento")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando ciclo")
	}
	return helper.JsonUpdated(c, "Ciclo actualizado", m)
}

// POST /api/a/ciclos/:id/activar
// Desactiva el ciclo activo anterior y activa éste, todo en una tx.
// El índice parcial respalda la invariante ante carreras de datos.
func (ctrl *CicloController) ActivarCiclo(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var activado model.CicloEscolarModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var m model.CicloEscolarModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("ciclo_id = ? AND ciclo_deleted_at IS NULL", id).
			First(&m).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.CicloEscolarModel{}).
			Where("ciclo_establecimiento_id = ? AND ciclo_es_activo = TRUE AND ciclo_deleted_at IS NULL AND ciclo_id <> ?",
				m.CicloEstablecimientoID, m.CicloID).
			Updates(map[string]any{
				"ciclo_es_activo":  false,
				"ciclo_updated_at": now,
			}).Error; err != nil {
			return err
		}

		m.CicloEsActivo = true
		m.CicloUpdatedAt = &now
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		activado = m
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Ciclo no encontrado")
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Otro ciclo fue activado al mismo tiempo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error activando ciclo")
	}
	return helper.JsonUpdated(c, "Ciclo activado", activado)
}

// DELETE /api/a/ciclos/:id
// Prohibido mientras el ciclo esté activo o tenga matrículas.
func (ctrl *CicloController) DeleteCiclo(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ciclo no encontrado")
	}
	if m.CicloEsActivo {
		return helper.JsonError(c, fiber.StatusConflict, "No se puede eliminar el ciclo activo")
	}

	var matriculas int64
	if err := ctrl.DB.Table("matriculas").
		Where("matricula_ciclo_id = ?", m.CicloID).
		Count(&matriculas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando matrículas")
	}
	if matriculas > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El ciclo tiene matrículas asociadas")
	}

	now := time.Now()
	if err := ctrl.DB.Model(m).Update("ciclo_deleted_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error eliminando ciclo")
	}
	return helper.JsonDeleted(c, "Ciclo eliminado", fiber.Map{"ciclo_id": m.CicloID})
}

func (ctrl *CicloController) findVivo(rawID string) (*model.CicloEscolarModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.CicloEscolarModel
	if err := ctrl.DB.
		Where("ciclo_id = ? AND ciclo_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
