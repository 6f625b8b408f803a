// controller/establecimiento_controller.go
package controller

import (
	"strings"
	"time"

	"aulapro_backend/internals/features/school/establecimientos/dto"
	"aulapro_backend/internals/features/school/establecimientos/model"
	helper "aulapro_backend/internals/helpers"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstablecimientoController struct {
	DB *gorm.DB
}

func NewEstablecimientoController(db *gorm.DB) *EstablecimientoController {
	return &EstablecimientoController{DB: db}
}

var validate = validator.New()

// POST /api/a/establecimientos
func (ctrl *EstablecimientoController) CreateEstablecimiento(c *fiber.Ctx) error {
	var req dto.CreateEstablecimientoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m := req.ToModel()

	// nombre único (case-insensitive) entre establecimientos vivos
	var existe int64
	if err := ctrl.DB.Model(&model.EstablecimientoModel{}).
		Where("lower(establecimiento_nombre) = ? AND establecimiento_deleted_at IS NULL", strings.ToLower(m.EstablecimientoNombre)).
		Count(&existe).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando establecimientos")
	}
	if existe > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un establecimiento con ese nombre")
	}

	base := m.EstablecimientoSlug
	if base == "" {
		base = m.EstablecimientoNombre
	}
	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "establecimientos",
		SlugColumn:       "establecimiento_slug",
		SoftDeleteColumn: "establecimiento_deleted_at",
	}, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el slug")
	}
	m.EstablecimientoSlug = slug

	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un establecimiento con ese nombre")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando establecimiento")
	}

	return helper.JsonCreated(c, "Establecimiento creado", dto.NewEstablecimientoResponse(m))
}

// GET /api/a/establecimientos
func (ctrl *EstablecimientoController) ListEstablecimientos(c *fiber.Ctx) error {
	var q dto.ListEstablecimientoQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.EstablecimientoModel{}).
		Where("establecimiento_deleted_at IS NULL")

	// los roles no-owner sólo ven su propio establecimiento
	if helper.GetRoleFromToken(c) != auth.RoleOwner {
		tenantID, err := helper.GetEstablecimientoIDFromToken(c)
		if err != nil {
			return err
		}
		tx = tx.Where("establecimiento_id = ?", tenantID)
	}

	if q.ActiveOnly != nil && *q.ActiveOnly {
		tx = tx.Where("establecimiento_is_active = TRUE")
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		tx = tx.Where("lower(establecimiento_nombre) LIKE ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando establecimientos")
	}

	var rows []model.EstablecimientoModel
	if err := tx.Order("establecimiento_nombre ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando establecimientos")
	}

	resp := make([]*dto.EstablecimientoResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.NewEstablecimientoResponse(&rows[i]))
	}
	return helper.JsonList(c, resp, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /api/a/establecimientos/:id
func (ctrl *EstablecimientoController) GetEstablecimiento(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}
	return helper.JsonOK(c, "OK", dto.NewEstablecimientoResponse(m))
}

// PUT /api/a/establecimientos/:id
func (ctrl *EstablecimientoController) UpdateEstablecimiento(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}

	var req dto.UpdateEstablecimientoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.EstablecimientoNombre != nil && !strings.EqualFold(*req.EstablecimientoNombre, m.EstablecimientoNombre) {
		var existe int64
		if err := ctrl.DB.Model(&model.EstablecimientoModel{}).
			Where("lower(establecimiento_nombre) = ? AND establecimiento_id <> ? AND establecimiento_deleted_at IS NULL",
				strings.ToLower(*req.EstablecimientoNombre), m.EstablecimientoID).
			Count(&existe).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando establecimientos")
		}
		if existe > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un establecimiento con ese nombre")
		}
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nombre o slug ya en uso")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando establecimiento")
	}
	return helper.JsonUpdated(c, "Establecimiento actualizado", dto.NewEstablecimientoResponse(m))
}

// POST /api/a/establecimientos/:id/background
// Sube la imagen de fondo del gafete y guarda su URL pública.
func (ctrl *EstablecimientoController) UploadBackground(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}

	file, err := c.FormFile("background")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'background'")
	}

	url, err := helper.UploadImageToStorage("gafete_fondos", file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo subir la imagen")
	}

	// el fondo anterior se borra en best-effort
	if m.EstablecimientoBackgroundURL != nil {
		_ = helper.DeleteImageByURL(*m.EstablecimientoBackgroundURL)
	}

	now := time.Now()
	m.EstablecimientoBackgroundURL = &url
	m.EstablecimientoUpdatedAt = &now
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando el fondo")
	}
	return helper.JsonUpdated(c, "Fondo actualizado", dto.NewEstablecimientoResponse(m))
}

// DELETE /api/a/establecimientos/:id  (soft delete)
func (ctrl *EstablecimientoController) DeleteEstablecimiento(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}
	now := time.Now()
	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"establecimiento_deleted_at": now,
		"establecimiento_is_active":  false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error eliminando establecimiento")
	}
	return helper.JsonDeleted(c, "Establecimiento eliminado", fiber.Map{"establecimiento_id": m.EstablecimientoID})
}

func (ctrl *EstablecimientoController) findVivo(rawID string) (*model.EstablecimientoModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.EstablecimientoModel
	if err := ctrl.DB.
		Where("establecimiento_id = ? AND establecimiento_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
