package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
)

// TeacherHandler maneja /academic/teachers.
type TeacherHandler struct {
	uc *usecase.TeacherUseCase
	v  *validation.Validator
}

// NewTeacherHandler construye el handler.
func NewTeacherHandler(uc *usecase.TeacherUseCase, v *validation.Validator) *TeacherHandler {
	return &TeacherHandler{uc: uc, v: v}
}

// Create godoc
// @Summary      Registrar docente
// @Tags         teachers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTeacherRequest  true  "Datos del docente"
// @Success      201   {object}  dto.TeacherResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /academic/teachers [post]
func (h *TeacherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTeacherRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar docentes
// @Description  Ordenados por nombre. Filtros opcionales por status y divisionId.
// @Tags         teachers
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "active | inactive | suspended"
// @Param        divisionId  query  string  false  "ID de división"
// @Success      200  {array}  dto.TeacherResponse
// @Router       /academic/teachers [get]
func (h *TeacherHandler) List(c *fiber.Ctx) error {
	var q dto.TeacherListQuery
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
// @Summary      Obtener docente
// @Tags         teachers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del docente"
// @Success      200  {object}  dto.TeacherResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /academic/teachers/{id} [get]
func (h *TeacherHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar docente (parcial)
// @Description  divisionId: null desasigna la división.
// @Tags         teachers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del docente"
// @Param        body  body  dto.UpdateTeacherRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.TeacherResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /academic/teachers/{id} [patch]
func (h *TeacherHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTeacherRequest
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
// @Summary      Eliminar docente
// @Tags         teachers
// @Security     Bearer
// @Param        id   path  string  true  "ID del docente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /academic/teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
