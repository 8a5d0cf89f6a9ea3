package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"pharmatrace/internal/config"
	"pharmatrace/internal/service"
)

// BatchHandler handles the batch registry endpoints.
type BatchHandler struct {
	batchService   service.BatchService
	revokeResponse string
}

// NewBatchHandler creates a new batch handler. revokeResponse selects the revoke-batch body shape.
func NewBatchHandler(batchService service.BatchService, revokeResponse string) *BatchHandler {
	return &BatchHandler{batchService: batchService, revokeResponse: revokeResponse}
}

// RegisterProductRequest represents a batch registration. Either details or ipfsHash is required.
type RegisterProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	BatchID  json.Number     `json:"batchId" validate:"required" swaggertype:"integer"`
	Details  json.RawMessage `json:"details,omitempty" swaggertype:"object"`
	IPFSHash string          `json:"ipfsHash,omitempty"`
}

// TransferOwnershipRequest represents a batch hand-over.
type TransferOwnershipRequest struct {
	BatchID  json.Number `json:"batchId" validate:"required" swaggertype:"integer"`
	NewOwner string      `json:"newOwner" validate:"required"`
}

// RevokeBatchRequest represents a batch revocation.
type RevokeBatchRequest struct {
	BatchID json.Number `json:"batchId" validate:"required" swaggertype:"integer"`
	Reason  string      `json:"reason"`
}

// RevokeMessageResponse is the acknowledgement shape of revoke-batch.
type RevokeMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TxHash  string `json:"txHash"`
}

// PinRequest carries arbitrary metadata to pin.
type PinRequest struct {
	Metadata json.RawMessage `json:"metadata" swaggertype:"object"`
}

// PinResponse returns the content identifier of pinned metadata.
type PinResponse struct {
	Success  bool   `json:"success"`
	IPFSHash string `json:"ipfsHash"`
}

// Verify godoc
// @Summary Verify a batch
// @Tags batches
// @Produce json
// @Param batchId path integer true "Batch id"
// @Success 200 {object} service.VerifyResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /verify/{batchId} [get]
func (h *BatchHandler) Verify(c echo.Context) error {
	result, err := h.batchService.Verify(c.Request().Context(), c.Param("batchId"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterProduct godoc
// @Summary Pin batch metadata and register the batch on-chain
// @Tags batches
// @Accept json
// @Produce json
// @Param request body RegisterProductRequest true "Batch data"
// @Success 200 {object} service.RegisterProductResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register-product [post]
func (h *BatchHandler) RegisterProduct(c echo.Context) error {
	var req RegisterProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.batchService.RegisterProduct(c.Request().Context(), service.RegisterProductInput{
		Name:     req.Name,
		BatchID:  req.BatchID.String(),
		Details:  req.Details,
		IPFSHash: req.IPFSHash,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// TransferOwnership godoc
// @Summary Transfer a batch to a new owner
// @Tags batches
// @Accept json
// @Produce json
// @Param request body TransferOwnershipRequest true "Transfer data"
// @Success 200 {object} model.TxReceipt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transfer-ownership [post]
func (h *BatchHandler) TransferOwnership(c echo.Context) error {
	var req TransferOwnershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.batchService.TransferOwnership(c.Request().Context(), req.BatchID.String(), req.NewOwner)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, receipt)
}

// RevokeBatch godoc
// @Summary Revoke a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param request body RevokeBatchRequest true "Revocation data"
// @Success 200 {object} model.TxReceipt
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /revoke-batch [post]
func (h *BatchHandler) RevokeBatch(c echo.Context) error {
	var req RevokeBatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.batchService.RevokeBatch(c.Request().Context(), req.BatchID.String(), req.Reason)
	if err != nil {
		return serviceError(err)
	}

	if h.revokeResponse == config.RevokeResponseMessage {
		return c.JSON(http.StatusOK, RevokeMessageResponse{
			Success: true,
			Message: "Batch revoked successfully",
			TxHash:  receipt.TxHash,
		})
	}
	return c.JSON(http.StatusOK, receipt)
}

// ListAll godoc
// @Summary List every batch
// @Tags batches
// @Produce json
// @Success 200 {array} model.Batch
// @Failure 500 {object} errors.ErrorResponse
// @Router /batches [get]
func (h *BatchHandler) ListAll(c echo.Context) error {
	batches, err := h.batchService.ListAll(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, batches)
}

// ListByManufacturer godoc
// @Summary List batches registered by a manufacturer
// @Tags batches
// @Produce json
// @Param walletAddress query string true "Manufacturer wallet"
// @Success 200 {array} model.Batch
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /manufacturer/batches [get]
func (h *BatchHandler) ListByManufacturer(c echo.Context) error {
	batches, err := h.batchService.ListByManufacturer(c.Request().Context(), c.QueryParam("walletAddress"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, batches)
}

// PinMetadata godoc
// @Summary Pin arbitrary metadata to IPFS
// @Tags pinning
// @Accept json
// @Produce json
// @Param request body PinRequest true "Metadata"
// @Success 200 {object} PinResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pinata/upload [post]
func (h *BatchHandler) PinMetadata(c echo.Context) error {
	var req PinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cid, err := h.batchService.PinMetadata(c.Request().Context(), req.Metadata)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, PinResponse{Success: true, IPFSHash: cid})
}
