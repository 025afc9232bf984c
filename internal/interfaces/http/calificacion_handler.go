package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/calificaciones"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
)

// CalificacionHandler maneja /calificaciones: registro, consulta, riesgo y boleta.
type CalificacionHandler struct {
	uc *calificaciones.UseCase
	v  *validation.Validator
}

func NewCalificacionHandler(uc *calificaciones.UseCase, v *validation.Validator) *CalificacionHandler {
	return &CalificacionHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Registrar calificación
// @Tags         calificaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCalificacionRequest  true  "Calificación"
// @Success      201   {object}  dto.CalificacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /calificaciones [post]
func (h *CalificacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCalificacionRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByStudent godoc
// @Summary      Calificaciones de un estudiante
// @Tags         calificaciones
// @Security     Bearer
// @Produce      json
// @Param        estudianteId  path  string  true  "ID del estudiante"
// @Success      200  {array}   dto.CalificacionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /calificaciones/{estudianteId} [get]
func (h *CalificacionHandler) ListByStudent(c *fiber.Ctx) error {
	out, err := h.uc.ListByStudent(c.UserContext(), c.Params("estudianteId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar calificación
// @Tags         calificaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la calificación"
// @Param        body  body  dto.UpdateCalificacionRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CalificacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /calificaciones/{id} [put]
func (h *CalificacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCalificacionRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar calificación
// @Tags         calificaciones
// @Security     Bearer
// @Param        id   path  string  true  "ID de la calificación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /calificaciones/{id} [delete]
func (h *CalificacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Risk godoc
// @Summary      Riesgo académico del estudiante
// @Description  Reenvía las calificaciones al servicio ML y devuelve su respuesta.
// @Tags         calificaciones
// @Security     Bearer
// @Produce      json
// @Param        estudianteId  path  string  true  "ID del estudiante"
// @Success      200  {object}  dto.RiskResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /calificaciones/{estudianteId}/riesgo [get]
func (h *CalificacionHandler) Risk(c *fiber.Ctx) error {
	out, err := h.uc.RiskForStudent(c.UserContext(), c.Params("estudianteId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ReportCard godoc
// @Summary      Boleta de calificaciones en PDF
// @Tags         calificaciones
// @Security     Bearer
// @Produce      application/pdf
// @Param        estudianteId  path  string  true  "ID del estudiante"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /calificaciones/{estudianteId}/boleta [get]
func (h *CalificacionHandler) ReportCard(c *fiber.Ctx) error {
	studentID := c.Params("estudianteId")
	pdf, err := h.uc.ReportCard(c.UserContext(), studentID)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="boleta-%s.pdf"`, studentID))
	return c.Send(pdf)
}
