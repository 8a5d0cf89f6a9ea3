package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"pharmatrace/internal/auth"
	"pharmatrace/internal/errors"
)

// AuthHandler handles admin login and token introspection.
type AuthHandler struct {
	admin  *auth.AdminAuthenticator
	tokens *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(admin *auth.AdminAuthenticator, tokens *auth.JWTService) *AuthHandler {
	return &AuthHandler{admin: admin, tokens: tokens}
}

// AdminLoginRequest represents an admin login request.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AdminLogin godoc
// @Summary Obtain an admin token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	if !h.admin.Enabled() {
		return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
			Error: "admin login is not enabled",
			Code:  "NOT_ENABLED",
		})
	}

	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if !h.admin.Check(req.Password) {
		return serviceError(errors.ErrUnauthorized)
	}

	token, err := h.tokens.GenerateToken("", auth.RoleAdmin)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Me godoc
// @Summary Claims of the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Claims
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return serviceError(errors.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return serviceError(errors.ErrUnauthorized)
	}
	return c.JSON(http.StatusOK, claims)
}
