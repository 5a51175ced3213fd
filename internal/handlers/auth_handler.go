package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gracechapel/pastor-mobile-api/internal/dto"
	"github.com/gracechapel/pastor-mobile-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) SuperadminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	resp, err := h.authService.SuperadminLogin(c.Context(), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	resp, err := h.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// ForgotPassword always answers 200 with the same message; the mail only
// goes out when the account exists and is active.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	h.authService.ForgotPassword(c.Context(), req.Email)
	return c.JSON(dto.MessageResponse{
		Message: "If the account exists, a reset code has been sent",
	})
}

// ResendOTP reissues the code, invalidating the previous one. Same
// non-committal answer as ForgotPassword.
func (h *AuthHandler) ResendOTP(c *fiber.Ctx) error {
	return h.ForgotPassword(c)
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	if err := h.authService.VerifyOTP(c.Context(), req.Email, req.Code); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Code verified"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, err)
	}

	if err := h.authService.ResetPassword(c.Context(), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password has been reset"})
}
