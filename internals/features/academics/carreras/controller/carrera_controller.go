// controller/carrera_controller.go
package controller

import (
	"strings"
	"time"

	"aulapro_backend/internals/features/academics/carreras/dto"
	"aulapro_backend/internals/features/academics/carreras/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarreraController struct {
	DB *gorm.DB
}

func NewCarreraController(db *gorm.DB) *CarreraController {
	return &CarreraController{DB: db}
}

var validate = validator.New()

// POST /api/a/establecimientos/:establecimientoId/carreras
func (ctrl *CarreraController) CreateCarrera(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}

	var req dto.CreateCarreraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel(establecimientoID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una carrera con ese nombre en el establecimiento")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando carrera")
	}
	return helper.JsonCreated(c, "Carrera creada", m)
}

// GET /api/a/establecimientos/:establecimientoId/carreras
func (ctrl *CarreraController) ListCarreras(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.CarreraModel{}).
		Where("carrera_establecimiento_id = ? AND carrera_deleted_at IS NULL", establecimientoID)
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("lower(carrera_nombre) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando carreras")
	}

	var rows []model.CarreraModel
	if err := tx.Order("carrera_nombre ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando carreras")
	}
	return helper.JsonList(c, rows, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /api/a/carreras/:id
func (ctrl *CarreraController) GetCarrera(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/carreras/:id
func (ctrl *CarreraController) UpdateCarrera(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
	}

	var req dto.UpdateCarreraRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe una carrera con ese nombre en el establecimiento")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando carrera")
	}
	return helper.JsonUpdated(c, "Carrera actualizada", m)
}

// DELETE /api/a/carreras/:id
func (ctrl *CarreraController) DeleteCarrera(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
	}

	var grados int64
	if err := ctrl.DB.Table("grados").
		Where("grado_carrera_id = ? AND grado_deleted_at IS NULL", m.CarreraID).
		Count(&grados).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando grados")
	}
	if grados > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "La carrera tiene grados asociados")
	}

	now := time.Now()
	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"carrera_deleted_at": now,
		"carrera_is_active":  false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error eliminando carrera")
	}
	return helper.JsonDeleted(c, "Carrera eliminada", fiber.Map{"carrera_id": m.CarreraID})
}

func (ctrl *CarreraController) findVivo(rawID string) (*model.CarreraModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.CarreraModel
	if err := ctrl.DB.
		Where("carrera_id = ? AND carrera_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
