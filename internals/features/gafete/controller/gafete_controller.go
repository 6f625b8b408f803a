// controller/gafete_controller.go
package controller

import (
	"errors"
	"fmt"

	ciclomodel "aulapro_backend/internals/features/academics/ciclos/model"
	gradomodel "aulapro_backend/internals/features/academics/grados/model"
	"aulapro_backend/internals/features/gafete/layout"
	configcontroller "aulapro_backend/internals/features/school/configuracion/controller"
	estmodel "aulapro_backend/internals/features/school/establecimientos/model"
	alumnomodel "aulapro_backend/internals/features/students/alumnos/model"
	matriculamodel "aulapro_backend/internals/features/students/matriculas/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GafeteController struct {
	DB *gorm.DB
}

func NewGafeteController(db *gorm.DB) *GafeteController {
	return &GafeteController{DB: db}
}

/* ========== Editor de layout ========== */

// GET /api/a/establecimientos/:id/gafete/layout
// Devuelve el layout efectivo: documento guardado mezclado sobre el
// default, siempre completo.
func (ctrl *GafeteController) GetLayout(c *fiber.Ctx) error {
	est, err := ctrl.findEstablecimiento(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}
	return helper.JsonOK(c, "OK", layout.ResolveLayout(storedDoc(est)))
}

// PUT /api/a/establecimientos/:id/gafete/layout
// Valida el payload completo antes de tocar la fila: un error deja el
// documento guardado exactamente como estaba.
func (ctrl *GafeteController) GuardarLayout(c *fiber.Ctx) error {
	est, err := ctrl.findEstablecimiento(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}

	var payload map[string]any
	if err := sonic.Unmarshal(c.Body(), &payload); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "JSON inválido")
	}

	sanitizado, err := layout.ValidateLayout(payload)
	if err != nil {
		var le *layout.ErrorLayout
		if errors.As(err, &le) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, le.Error())
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	doc, err := sonic.Marshal(sanitizado)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error serializando layout")
	}
	if err := ctrl.DB.Model(est).
		Update("establecimiento_gafete_layout", datatypes.JSON(doc)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error guardando layout")
	}
	return helper.JsonUpdated(c, "Layout guardado", sanitizado)
}

// DELETE /api/a/establecimientos/:id/gafete/layout
// Reset: vuelve al default dejando el documento vacío.
func (ctrl *GafeteController) ResetLayout(c *fiber.Ctx) error {
	est, err := ctrl.findEstablecimiento(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Establecimiento no encontrado")
	}
	if err := ctrl.DB.Model(est).
		Update("establecimiento_gafete_layout", datatypes.JSON([]byte("{}"))).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error reiniciando layout")
	}
	return helper.JsonOK(c, "Layout reiniciado", layout.DefaultLayout())
}

/* ========== Render del gafete ========== */

// GET /api/a/matriculas/:id/gafete.jpg
func (ctrl *GafeteController) GetGafeteJPG(c *fiber.Ctx) error {
	out, _, err := ctrl.renderPorMatricula(c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(out)
}

// GET /api/a/matriculas/:id/gafete_descarga.jpg
func (ctrl *GafeteController) DescargarGafeteJPG(c *fiber.Ctx) error {
	out, alumno, err := ctrl.renderPorMatricula(c.Params("id"))
	if err != nil {
		return err
	}
	filename := helper.GafeteFilename(alumno.AlumnoApellidos, alumno.AlumnoNombres, alumno.AlumnoCodigoPersonal)
	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(out)
}

// renderPorMatricula junta matrícula, alumno, grado, ciclo,
// establecimiento y configuración, y produce el JPEG. Los assets se
// bajan en best-effort: un fondo caído nunca rompe el gafete.
func (ctrl *GafeteController) renderPorMatricula(rawID string) ([]byte, *alumnomodel.AlumnoModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var matricula matriculamodel.MatriculaModel
	if err := ctrl.DB.Where("matricula_id = ?", id).First(&matricula).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Matrícula no encontrada")
	}

	var alumno alumnomodel.AlumnoModel
	if err := ctrl.DB.Where("alumno_id = ?", matricula.MatriculaAlumnoID).First(&alumno).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Alumno no encontrado")
	}
	var grado gradomodel.GradoModel
	if err := ctrl.DB.Where("grado_id = ?", matricula.MatriculaGradoID).First(&grado).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Grado no encontrado")
	}
	var ciclo ciclomodel.CicloEscolarModel
	if err := ctrl.DB.Where("ciclo_id = ?", matricula.MatriculaCicloID).First(&ciclo).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Ciclo no encontrado")
	}
	var est estmodel.EstablecimientoModel
	if err := ctrl.DB.Where("establecimiento_id = ?", grado.GradoEstablecimientoID).First(&est).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Establecimiento no encontrado")
	}

	config, err := configcontroller.Obtener(ctrl.DB)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Error leyendo configuración")
	}

	ly := layout.ResolveLayout(storedDoc(&est))

	datos := layout.DatosGafete{
		Nombres:         alumno.AlumnoNombres,
		Apellidos:       alumno.AlumnoApellidos,
		CodigoAlumno:    alumno.AlumnoCodigoPersonal,
		Grado:           grado.GradoNombre,
		Telefono:        alumno.AlumnoTelefono,
		Establecimiento: est.EstablecimientoNombre,
	}
	if grado.GradoDescripcion != nil {
		datos.GradoDescripcion = *grado.GradoDescripcion
	}
	if est.EstablecimientoSitioWeb != nil {
		datos.SitioWeb = *est.EstablecimientoSitioWeb
	}
	if alumno.AlumnoCUI != nil {
		datos.CUI = *alumno.AlumnoCUI
	}

	var assets layout.Assets
	if est.EstablecimientoBackgroundURL != nil {
		if b, err := helper.FetchAsset(*est.EstablecimientoBackgroundURL); err == nil {
			assets.Fondo = b
		}
	}
	if alumno.AlumnoFotoURL != nil {
		if b, err := helper.FetchAsset(*alumno.AlumnoFotoURL); err == nil {
			assets.Foto = b
		}
	}
	if config.ConfiguracionLogotipoURL != nil {
		if b, err := helper.FetchAsset(*config.ConfiguracionLogotipoURL); err == nil {
			assets.Logo = b
		}
	}

	out, err := layout.RenderGafete(ly, datos, assets)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Error generando el gafete")
	}
	return out, &alumno, nil
}

/* ========== internos ========== */

func storedDoc(est *estmodel.EstablecimientoModel) map[string]any {
	if len(est.EstablecimientoGafeteLayout) == 0 {
		return nil
	}
	var doc map[string]any
	if err := sonic.Unmarshal(est.EstablecimientoGafeteLayout, &doc); err != nil {
		return nil
	}
	return doc
}

func (ctrl *GafeteController) findEstablecimiento(rawID string) (*estmodel.EstablecimientoModel, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var m estmodel.EstablecimientoModel
	if err := ctrl.DB.
		Where("establecimiento_id = ? AND establecimiento_deleted_at IS NULL", id).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
