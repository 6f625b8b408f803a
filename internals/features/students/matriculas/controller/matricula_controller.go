// controller/matricula_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"aulapro_backend/internals/configs"
	ciclocontroller "aulapro_backend/internals/features/academics/ciclos/controller"
	gradomodel "aulapro_backend/internals/features/academics/grados/model"
	alumnocontroller "aulapro_backend/internals/features/students/alumnos/controller"
	"aulapro_backend/internals/features/students/matriculas/dto"
	"aulapro_backend/internals/features/students/matriculas/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatriculaController struct {
	DB *gorm.DB
}

func NewMatriculaController(db *gorm.DB) *MatriculaController {
	return &MatriculaController{DB: db}
}

var validate = validator.New()

// POST /api/a/grados/:id/matriculas
//
// Flujo de matriculación: resuelve el alumno por código dentro del
// establecimiento del grado, exige un ciclo activo, y hace
// get-or-create sobre la terna (alumno, grado, ciclo). Si ya existe
// la fila sólo se actualiza el estado. Sin ciclo activo no se crea
// ninguna fila.
func (ctrl *MatriculaController) Matricular(c *fiber.Ctx) error {
	gradoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de grado inválido")
	}

	var req dto.MatricularRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	estado := model.EstadoActivo
	if req.Estado != nil {
		estado = *req.Estado
	}

	var grado gradomodel.GradoModel
	if err := ctrl.DB.
		Where("grado_id = ? AND grado_deleted_at IS NULL", gradoID).
		First(&grado).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Grado no encontrado")
	}

	alumno, err := alumnocontroller.BuscarPorCodigo(ctrl.DB, grado.GradoEstablecimientoID, req.CodigoPersonal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno no encontrado con ese código")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error buscando alumno")
	}

	// el ciclo activo manda; sin él no hay matrícula
	ciclo, err := ciclocontroller.CicloActivo(ctrl.DB, grado.GradoEstablecimientoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusConflict, "No hay ciclo activo en el establecimiento")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error consultando el ciclo activo")
	}
	if ciclo.CicloEstablecimientoID != grado.GradoEstablecimientoID {
		return helper.JsonError(c, fiber.StatusConflict, "El ciclo pertenece a otro establecimiento")
	}

	var resultado model.MatriculaModel
	creada := false
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var existente model.MatriculaModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("matricula_alumno_id = ? AND matricula_grado_id = ? AND matricula_ciclo_id = ?",
				alumno.AlumnoID, grado.GradoID, ciclo.CicloID).
			First(&existente).Error
		yaExiste := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var otrasActivas int64
		if !yaExiste {
			if err := tx.Model(&model.MatriculaModel{}).
				Where("matricula_alumno_id = ? AND matricula_ciclo_id = ? AND matricula_grado_id <> ? AND matricula_estado = ?",
					alumno.AlumnoID, ciclo.CicloID, grado.GradoID, model.EstadoActivo).
				Count(&otrasActivas).Error; err != nil {
				return err
			}
		}

		if err := decidirMatricula(yaExiste, otrasActivas, configs.AllowMultiGradePerCycle); err != nil {
			return err
		}

		if yaExiste {
			// ya matriculado en este grado: sólo refrescar estado
			now := time.Now()
			existente.MatriculaEstado = estado
			existente.MatriculaUpdatedAt = &now
			if err := tx.Save(&existente).Error; err != nil {
				return err
			}
			resultado = existente
			return nil
		}

		nueva := model.MatriculaModel{
			MatriculaAlumnoID:  alumno.AlumnoID,
			MatriculaGradoID:   grado.GradoID,
			MatriculaCicloID:   ciclo.CicloID,
			MatriculaEstado:    estado,
			MatriculaCreatedAt: time.Now(),
		}
		if err := tx.Create(&nueva).Error; err != nil {
			return err
		}
		resultado = nueva
		creada = true
		return nil
	})
	if err != nil {
		if errors.Is(err, errOtroGrado) {
			return helper.JsonError(c, fiber.StatusConflict, "El alumno ya está matriculado en otro grado este ciclo")
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "El alumno ya está matriculado en este grado y ciclo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error matriculando alumno")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		log.Printf("[MATRICULA] user=%s alumno=%s grado=%s ciclo=%s creada=%t",
			userID, alumno.AlumnoID, grado.GradoID, ciclo.CicloID, creada)
	}

	if creada {
		return helper.JsonCreated(c, "Alumno matriculado", resultado)
	}
	return helper.JsonUpdated(c, "Matrícula actualizada", resultado)
}

var errOtroGrado = errors.New("alumno ya matriculado en otro grado del ciclo")

// decidirMatricula concentra la regla del flujo, separada del acceso a
// datos: una terna ya existente siempre se actualiza; una nueva sólo
// procede si el alumno no tiene otra matrícula activa en el mismo
// ciclo, salvo que la instalación permita multi-grado.
func decidirMatricula(yaExiste bool, otrasActivas int64, permitirMultiGrado bool) error {
	if yaExiste {
		return nil
	}
	if !permitirMultiGrado && otrasActivas > 0 {
		return errOtroGrado
	}
	return nil
}

// POST /api/a/matriculas/:id/baja
// Baja lógica: la fila queda como historial con estado inactivo.
func (ctrl *MatriculaController) Baja(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m model.MatriculaModel
	if err := ctrl.DB.Where("matricula_id = ?", id).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Matrícula no encontrada")
	}

	now := time.Now()
	m.MatriculaEstado = model.EstadoInactivo
	m.MatriculaUpdatedAt = &now
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error dando de baja")
	}
	return helper.JsonUpdated(c, "Matrícula dada de baja", m)
}

// GET /api/a/grados/:id/matriculas?ciclo_id=&estado=
func (ctrl *MatriculaController) ListMatriculas(c *fiber.Ctx) error {
	gradoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de grado inválido")
	}

	var q dto.ListMatriculaQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query inválido")
	}
	if q.Estado != "" && !model.EstadoValido(q.Estado) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Estado inválido")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Table("matriculas").
		Joins("JOIN alumnos ON alumnos.alumno_id = matriculas.matricula_alumno_id").
		Where("matriculas.matricula_grado_id = ?", gradoID)
	if q.CicloID != "" {
		cicloID, err := uuid.Parse(q.CicloID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ciclo_id inválido")
		}
		tx = tx.Where("matriculas.matricula_ciclo_id = ?", cicloID)
	}
	if q.Estado != "" {
		tx = tx.Where("matriculas.matricula_estado = ?", q.Estado)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error contando matrículas")
	}

	var rows []dto.MatriculaConAlumno
	if err := tx.
		Select(`matriculas.matricula_id, matriculas.matricula_alumno_id,
			matriculas.matricula_grado_id, matriculas.matricula_ciclo_id,
			matriculas.matricula_estado, matriculas.matricula_created_at,
			matriculas.matricula_updated_at,
			alumnos.alumno_nombres, alumnos.alumno_apellidos,
			alumnos.alumno_codigo_personal, alumnos.alumno_telefono,
			alumnos.alumno_foto_url`).
		Order("alumnos.alumno_apellidos ASC, alumnos.alumno_nombres ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error listando matrículas")
	}
	return helper.JsonList(c, rows, helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}
