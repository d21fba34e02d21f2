package handlers

import (
	"pricescout/internal/dto"
	"pricescout/internal/service"
	"pricescout/internal/validate"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if missing := validate.FirstMissing([]validate.Field{
		{Name: "username", Value: req.Username},
		{Name: "email", Value: req.Email},
		{Name: "password", Value: req.Password},
	}); missing != "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}

	if !validate.IsValidEmail(req.Email) {
		return fail(c, fiber.StatusBadRequest, "invalid email")
	}
	req.Username = validate.Sanitize(req.Username)

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		if err == service.ErrUserExists {
			return fail(c, fiber.StatusConflict, "User already exists")
		}
		h.logger.Error("Registration failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if missing := validate.FirstMissing([]validate.Field{
		{Name: "email", Value: req.Email},
		{Name: "password", Value: req.Password},
	}); missing != "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: "+missing)
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("Login failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request")
	}

	if req.RefreshToken == "" {
		return fail(c, fiber.StatusBadRequest, "missing required field: refreshToken")
	}

	resp, err := h.authService.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		if err == service.ErrInvalidCredentials || err == service.ErrUserNotFound {
			return fail(c, fiber.StatusUnauthorized, "Invalid refresh token")
		}
		h.logger.Error("Token refresh failed", zap.Error(err))
		return err
	}

	return ok(c, resp)
}
