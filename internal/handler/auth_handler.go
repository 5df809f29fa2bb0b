package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"nordstudio/internal/response"
	"nordstudio/internal/service"
)

// AuthHandler handles the demo-only authentication endpoints. Nothing
// server-side trusts these results; the admin flag only drives UI state.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a demo login request.
type LoginRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// VerifyRequest represents a demo token verification request.
type VerifyRequest struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Demo login
// @Description Demo-only credential check. Not a security mechanism.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login data"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.Login(req.Email, req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(result))
}

// Verify godoc
// @Summary Demo token check
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Token"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.authService.Verify(req.Token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response.OK(map[string]bool{"valid": true}))
}
