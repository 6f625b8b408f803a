// controller/configuracion_controller.go
package controller

import (
	"errors"

	"aulapro_backend/internals/features/school/configuracion/dto"
	"aulapro_backend/internals/features/school/configuracion/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ConfiguracionController struct {
	DB *gorm.DB
}

func NewConfiguracionController(db *gorm.DB) *ConfiguracionController {
	return &ConfiguracionController{DB: db}
}

var validate = validator.New()

// Obtener devuelve el registro único; si no existe lo crea con defaults.
// Misma semántica que un get_or_create.
func Obtener(db *gorm.DB) (*model.ConfiguracionGeneralModel, error) {
	var m model.ConfiguracionGeneralModel
	err := db.Order("configuracion_created_at ASC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.ConfiguracionGeneralModel{ConfiguracionNombre: "Institución"}
		if err := db.Create(&m).Error; err != nil {
			return nil, err
		}
		return &m, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GET /api/a/configuracion
func (ctrl *ConfiguracionController) GetConfiguracion(c *fiber.Ctx) error {
	m, err := Obtener(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error leyendo configuración")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/a/configuracion (upsert del registro único)
func (ctrl *ConfiguracionController) UpsertConfiguracion(c *fiber.Ctx) error {
	var req dto.UpsertConfiguracionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	m, err := Obtener(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error leyendo configuración")
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Teléfono ya registrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando configuración")
	}
	return helper.JsonUpdated(c, "Configuración actualizada", m)
}

// POST /api/a/configuracion/logotipo
func (ctrl *ConfiguracionController) UploadLogotipo(c *fiber.Ctx) error {
	file, err := c.FormFile("logotipo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'logotipo'")
	}

	m, err := Obtener(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error leyendo configuración")
	}

	url, err := helper.UploadImageToStorage("logotipos", file)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "No se pudo subir el logotipo")
	}
	if m.ConfiguracionLogotipoURL != nil {
		_ = helper.DeleteImageByURL(*m.ConfiguracionLogotipoURL)
	}

	m.ConfiguracionLogotipoURL = &url
	if err := ctrl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando el logotipo")
	}
	return helper.JsonUpdated(c, "Logotipo actualizado", m)
}
