package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pharmatrace/internal/model"
	"pharmatrace/internal/service"
)

// RegistrationHandler handles the participant signup and approval endpoints.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// SignupRequest represents a participant registration request.
type SignupRequest struct {
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Role          model.UserRole `json:"role"`
	WalletAddress string         `json:"walletAddress" validate:"required"`
	LicenseNumber string         `json:"licenseNumber"`
}

// WalletRequest carries a wallet address.
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
}

// LoginResponse represents a successful participant login.
type LoginResponse struct {
	Success bool                       `json:"success"`
	User    *model.RegistrationRequest `json:"user"`
	Token   string                     `json:"token"`
}

// StatusResponse reports a wallet's registration status.
type StatusResponse struct {
	Status model.RegistrationStatus `json:"status"`
}

// ApproveResponse reports an approval and the on-chain registration behind it.
type ApproveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	model.TxReceipt
}

// Signup godoc
// @Summary Request registration as a supply-chain participant
// @Tags registration
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *RegistrationHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.registrationService.Signup(c.Request().Context(), service.SignupInput{
		Name:          req.Name,
		Email:         req.Email,
		Role:          req.Role,
		WalletAddress: req.WalletAddress,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{
		Success: true,
		Message: "Registration pending verification by admin",
	})
}

// Login godoc
// @Summary Log in with an approved wallet
// @Tags registration
// @Accept json
// @Produce json
// @Param request body WalletRequest true "Wallet"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /login [post]
func (h *RegistrationHandler) Login(c echo.Context) error {
	var req WalletRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.registrationService.Login(c.Request().Context(), req.WalletAddress)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Success: true, User: result.User, Token: result.Token})
}

// ListPending godoc
// @Summary List registration requests awaiting review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RegistrationRequest
// @Failure 401 {object} errors.ErrorResponse
// @Router /pending-requests [get]
func (h *RegistrationHandler) ListPending(c echo.Context) error {
	reqs, err := h.registrationService.ListPending(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, reqs)
}

// Approve godoc
// @Summary Approve a pending request and register the wallet on-chain
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param wallet path string true "Wallet address"
// @Success 200 {object} ApproveResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /approve-request/{wallet} [post]
func (h *RegistrationHandler) Approve(c echo.Context) error {
	receipt, err := h.registrationService.Approve(c.Request().Context(), c.Param("wallet"))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ApproveResponse{
		Success:   true,
		Message:   "User approved and registered on blockchain",
		TxReceipt: *receipt,
	})
}

// Reject godoc
// @Summary Reject and delete a pending request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param wallet path string true "Wallet address"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reject-request/{wallet} [post]
func (h *RegistrationHandler) Reject(c echo.Context) error {
	if err := h.registrationService.Reject(c.Request().Context(), c.Param("wallet")); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Registration request rejected"})
}

// Status godoc
// @Summary Registration status of a wallet
// @Description Returns "not_found" for wallets without a request.
// @Tags registration
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} StatusResponse
// @Router /api/user-status/{wallet} [get]
func (h *RegistrationHandler) Status(c echo.Context) error {
	status, err := h.registrationService.Status(c.Request().Context(), c.Param("wallet"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: status})
}

// OnChainUser godoc
// @Summary On-chain registration of a wallet
// @Tags registration
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} model.ChainUser
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/{wallet} [get]
func (h *RegistrationHandler) OnChainUser(c echo.Context) error {
	user, err := h.registrationService.OnChainUser(c.Request().Context(), c.Param("wallet"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, user)
}
