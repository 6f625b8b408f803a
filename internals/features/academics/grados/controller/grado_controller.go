// controller/grado_controller.go
package controller

import (
	"strings"
	"time"

	carreramodel "aulapro_backend/internals/features/academics/carreras/model"
	"aulapro_backend/internals/features/academics/grados/dto"
	"aulapro_backend/internals/features/academics/grados/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GradoController struct {
	DB *gorm.DB
}

func NewGradoController(db *gorm.DB) *GradoController {
	return &GradoController{DB: db}
}

var validate = validator.New()

// POST /api/a/establecimientos/:establecimientoId/grados
func (ctrl *GradoController) CreateGrado(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}

	var req dto.CreateGradoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// la carrera (si viene) debe ser del mismo establecimiento
	if req.GradoCarreraID != nil {
		var carrera carreramodel.CarreraModel
		if err := ctrl.DB.
			Where("carrera_id = ? AND carrera_deleted_at IS NULL", *req.GradoCarreraID).
			First(&carrera).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		if carrera.CarreraEstablecimientoID != establecimientoID {
			return helper.JsonError(c, fiber.StatusConflict, "La carrera pertenece a otro establecimiento")
		}
	}

	m := req.ToModel(establecimientoID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando grado")
	}
	return helper.JsonCreated(c, "Grado creado", m)
}

// GET /api/a/establecimientos/:establecimientoId/grados
func (ctrl *GradoController) ListGrados(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.GradoModel{}).
		Where("grado_establecimiento_id = ? AND grado_deleted_at IS NULL", establecimientoID)
	if raw := strings.TrimSpace(c.Query("carrera_id")); raw != "" {
		carreraID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "carrera_id inválido")
		}
		tx = tx.Where("grado_carrera_id = ?", carreraID)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		tx = tx.Where("lower(grado_nombre) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando grados")
	}

	var rows []model.GradoModel
	if err := tx.Order("grado_nombre ASC, grado_seccion ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando grados")
	}
	return helper.JsonList(c, rows, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /api/a/grados/:id
func (ctrl *GradoController) GetGrado(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grado no encontrado")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/grados/:id
func (ctrl *GradoController) UpdateGrado(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grado no encontrado")
	}

	var req dto.UpdateGradoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.GradoCarreraID != nil {
		var carrera carreramodel.CarreraModel
		if err := ctrl.DB.
			Where("carrera_id = ? AND carrera_deleted_at IS NULL", *req.GradoCarreraID).
			First(&carrera).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Carrera no encontrada")
		}
		if carrera.CarreraEstablecimientoID != m.GradoEstablecimientoID {
			return helper.JsonError(c, fiber.StatusConflict, "La carrera pertenece a otro establecimiento")
		}
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando grado")
	}
	return helper.JsonUpdated(c, "Grado actualizado", m)
}

// DELETE /api/a/grados/:id
func (ctrl *GradoController) DeleteGrado(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grado no encontrado")
	}

	var matriculas int64
	if err := ctrl.DB.Table("matriculas").
		Where("matricula_grado_id = ?", m.GradoID).
		Count(&matriculas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando matrículas")
	}
	if matriculas > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "El grado tiene matrículas asociadas")
	}

	now := time.Now()
	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"grado_deleted_at": now,
		"grado_is_active":  false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error eliminando grado")
	}
	return helper.JsonDeleted(c, "Grado eliminado", fiber.Map{"grado_id": m.GradoID})
}

func (ctrl *GradoController) findVivo(rawID string) (*model.GradoModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.GradoModel
	if err := ctrl.DB.
		Where("grado_id = ? AND grado_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
