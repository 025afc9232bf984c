package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
)

// EnrollmentHandler maneja /academic/enrollments (cursos y actividades).
type EnrollmentHandler struct {
	uc *usecase.EnrollmentUseCase
	v  *validation.Validator
}

func NewEnrollmentHandler(uc *usecase.EnrollmentUseCase, v *validation.Validator) *EnrollmentHandler {
	return &EnrollmentHandler{uc: uc, v: v}
}

// CreateCourse godoc
// @Summary      Inscribir estudiante a un curso
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCourseEnrollmentRequest  true  "Inscripción"
// @Success      201   {object}  dto.EnrollmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /academic/enrollments/courses [post]
func (h *EnrollmentHandler) CreateCourse(c *fiber.Ctx) error {
	var in dto.CreateCourseEnrollmentRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateCourse(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateActivity godoc
// @Summary      Inscribir estudiante a una actividad
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityEnrollmentRequest  true  "Inscripción"
// @Success      201   {object}  dto.EnrollmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /academic/enrollments/activities [post]
func (h *EnrollmentHandler) CreateActivity(c *fiber.Ctx) error {
	var in dto.CreateActivityEnrollmentRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.CreateActivity(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BulkCreateActivity godoc
// @Summary      Inscripción masiva a una actividad
// @Description  Crea las inscripciones nuevas y reporta los estudiantes ya inscritos.
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkActivityEnrollmentRequest  true  "periodId, activityId, studentIds"
// @Success      201   {object}  dto.BulkEnrollmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /academic/enrollments/activities/bulk [post]
func (h *EnrollmentHandler) BulkCreateActivity(c *fiber.Ctx) error {
	var in dto.BulkActivityEnrollmentRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.BulkCreateActivity(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inscripciones
// @Tags         enrollments
// @Security     Bearer
// @Produce      json
// @Param        kind       query  string  false  "course | activity"
// @Param        periodId   query  string  false  "Periodo"
// @Param        studentId  query  string  false  "Estudiante"
// @Param        targetId   query  string  false  "Curso o actividad"
// @Param        status     query  string  false  "active | inactive"
// @Success      200  {array}  dto.EnrollmentResponse
// @Router       /academic/enrollments [get]
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	var q dto.EnrollmentListQuery
	if err := bindQuery(c, h.v, &q); err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener inscripción
// @Tags         enrollments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la inscripción"
// @Success      200  {object}  dto.EnrollmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /academic/enrollments/{id} [get]
func (h *EnrollmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la inscripción
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                             true  "ID de la inscripción"
// @Param        body  body  dto.UpdateEnrollmentStatusRequest  true  "status"
// @Success      200   {object}  dto.EnrollmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /academic/enrollments/{id}/status [patch]
func (h *EnrollmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateEnrollmentStatusRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SetUnitGrades godoc
// @Summary      Registrar calificaciones por unidad
// @Description  Solo inscripciones a cursos. Reemplaza la calificación de cada unidad enviada.
// @Tags         enrollments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID de la inscripción"
// @Param        body  body  dto.UpdateUnitGradesRequest  true  "grades"
// @Success      200   {object}  dto.EnrollmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /academic/enrollments/{id}/grades [put]
func (h *EnrollmentHandler) SetUnitGrades(c *fiber.Ctx) error {
	var in dto.UpdateUnitGradesRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.SetUnitGrades(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar inscripción
// @Tags         enrollments
// @Security     Bearer
// @Param        id   path  string  true  "ID de la inscripción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /academic/enrollments/{id} [delete]
func (h *EnrollmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
