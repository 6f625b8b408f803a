// controller/alumno_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	gradomodel "aulapro_backend/internals/features/academics/grados/model"
	"aulapro_backend/internals/features/students/alumnos/dto"
	"aulapro_backend/internals/features/students/alumnos/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlumnoController struct {
	DB *gorm.DB
}

func NewAlumnoController(db *gorm.DB) *AlumnoController {
	return &AlumnoController{DB: db}
}

var validate = validator.New()

// BuscarPorCodigo busca primero por igualdad exacta (case-insensitive)
// y, si no hay resultado, por contención. Scope: un establecimiento.
func BuscarPorCodigo(db *gorm.DB, establecimientoID uuid.UUID, codigo string) (*model.AlumnoModel, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, gorm.ErrRecordNotFound
	}

	base := func() *gorm.DB {
		return db.Where("alumno_establecimiento_id = ? AND alumno_deleted_at IS NULL", establecimientoID)
	}

	var m model.AlumnoModel
	err := base().
		Where("lower(alumno_codigo_personal) = lower(?)", codigo).
		First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = base().
		Where("lower(alumno_codigo_personal) LIKE ?", "%"+strings.ToLower(codigo)+"%").
		Order("alumno_codigo_personal ASC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// POST /api/a/establecimientos/:establecimientoId/alumnos
func (ctrl *AlumnoController) CreateAlumno(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}

	var req dto.CreateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	// código personal único dentro del establecimiento
	var existe int64
	if err := ctrl.DB.Model(&model.AlumnoModel{}).
		Where("alumno_establecimiento_id = ? AND lower(alumno_codigo_personal) = lower(?) AND alumno_deleted_at IS NULL",
			establecimientoID, strings.TrimSpace(req.AlumnoCodigoPersonal)).
		Count(&existe).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando alumnos")
	}
	if existe > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un alumno con ese código personal")
	}

	m := req.ToModel(establecimientoID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creando alumno")
	}
	return helper.JsonCreated(c, "Alumno creado", m)
}

// GET /api/a/establecimientos/:establecimientoId/alumnos
func (ctrl *AlumnoController) ListAlumnos(c *fiber.Ctx) error {
	establecimientoID, err := uuid.Parse(c.Params("establecimientoId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de establecimiento inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&model.AlumnoModel{}).
		Where("alumno_establecimiento_id = ? AND alumno_deleted_at IS NULL", establecimientoID)
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where(
			"lower(alumno_nombres) LIKE ? OR lower(alumno_apellidos) LIKE ? OR lower(alumno_codigo_personal) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando alumnos")
	}

	var rows []model.AlumnoModel
	if err := tx.Order("alumno_apellidos ASC, alumno_nombres ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando alumnos")
	}
	return helper.JsonList(c, rows, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /api/a/grados/:id/alumnos/buscar?codigo=
// Respuesta compacta para el flujo de matriculación.
func (ctrl *AlumnoController) BuscarAlumno(c *fiber.Ctx) error {
	gradoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de grado inválido")
	}

	var grado gradomodel.GradoModel
	if err := ctrl.DB.
		Where("grado_id = ? AND grado_deleted_at IS NULL", gradoID).
		First(&grado).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grado no encontrado")
	}

	codigo := strings.TrimSpace(c.Query("codigo"))
	if codigo == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el parámetro 'codigo'")
	}

	alumno, err := BuscarPorCodigo(ctrl.DB, grado.GradoEstablecimientoID, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": false, "alumno": nil})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error buscando alumno")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "alumno": alumno})
}

// GET /api/a/alumnos/:id
func (ctrl *AlumnoController) GetAlumno(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/alumnos/:id
func (ctrl *AlumnoController) UpdateAlumno(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}

	var req dto.UpdateAlumnoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if req.AlumnoCodigoPersonal != nil &&
		!strings.EqualFold(strings.TrimSpace(*req.AlumnoCodigoPersonal), m.AlumnoCodigoPersonal) {
		var existe int64
		if err := ctrl.DB.Model(&model.AlumnoModel{}).
			Where("alumno_establecimiento_id = ? AND lower(alumno_codigo_personal) = lower(?) AND alumno_id <> ? AND alumno_deleted_at IS NULL",
				m.AlumnoEstablecimientoID, strings.TrimSpace(*req.AlumnoCodigoPersonal), m.AlumnoID).
			Count(&existe).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando alumnos")
		}
		if existe > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un alumno con ese código personal")
		}
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error actualizando alumno")
	}
	return helper.JsonUpdated(c, "Alumno actualizado", m)
}

// POST /api/a/alumnos/:id/foto
func (ctrl *AlumnoController) UploadFoto(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}

	file, err := c.FormFile("foto")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'foto'")
	}

	url, err := helper.UploadImageToStorage("alumnos_fotos", file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo subir la foto")
	}
	if m.AlumnoFotoURL != nil {
		_ = helper.DeleteImageByURL(*m.AlumnoFotoURL)
	}

	now := time.Now()
	m.AlumnoFotoURL = &url
	m.AlumnoUpdatedAt = &now
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando la foto")
	}
	return helper.JsonUpdated(c, "Foto actualizada", m)
}

// DELETE /api/a/alumnos/:id
func (ctrl *AlumnoController) DeleteAlumno(c *fiber.Ctx) error {
	m, err := ctrl.findVivo(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado")
	}
	now := time.Now()
	if err := ctrl.DB.Model(m).Updates(map[string]any{
		"alumno_deleted_at": now,
		"alumno_is_active":  false,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error eliminando alumno")
	}
	return helper.JsonDeleted(c, "Alumno eliminado", fiber.Map{"alumno_id": m.AlumnoID})
}

func (ctrl *AlumnoController) findVivo(rawID string) (*model.AlumnoModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.AlumnoModel
	if err := ctrl.DB.
		Where("alumno_id = ? AND alumno_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
