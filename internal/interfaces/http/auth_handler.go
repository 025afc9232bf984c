package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/auth"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
)

// AuthHandler maneja login, perfil y códigos de verificación.
type AuthHandler struct {
	uc *auth.AuthUseCase
	v  *validation.Validator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, v *validation.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, v: v}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SendVerificationCode godoc
// @Summary      Enviar código de verificación por correo
// @Description  Responde igual exista o no el correo.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendVerificationCodeRequest  true  "email"
// @Success      202   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/verification-code [post]
func (h *AuthHandler) SendVerificationCode(c *fiber.Ctx) error {
	var in dto.SendVerificationCodeRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	if err := h.uc.SendVerificationCode(c.UserContext(), in); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{
		Success: true,
		Message: "si el correo está registrado recibirá un código de verificación",
	})
}

// VerifyCode godoc
// @Summary      Verificar código
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCodeRequest  true  "email, code"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /auth/verification-code/verify [post]
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	var in dto.VerifyCodeRequest
	if err := bindBody(c, h.v, &in); err != nil {
		return err
	}
	if err := h.uc.VerifyCode(c.UserContext(), in); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "código verificado"})
}
