package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pharmatrace/internal/service"
)

// PPBHandler serves the license registry mirror.
type PPBHandler struct {
	ppbService service.PPBService
}

// NewPPBHandler creates a new PPB handler.
func NewPPBHandler(ppbService service.PPBService) *PPBHandler {
	return &PPBHandler{ppbService: ppbService}
}

// List godoc
// @Summary List the PPB license registry
// @Tags ppb
// @Produce json
// @Success 200 {array} model.PPBRecord
// @Router /api/ppb [get]
func (h *PPBHandler) List(c echo.Context) error {
	records, err := h.ppbService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary Look a license number up
// @Tags ppb
// @Produce json
// @Param licenseNumber path string true "License number"
// @Success 200 {object} model.PPBRecord
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/ppb/{licenseNumber} [get]
func (h *PPBHandler) Get(c echo.Context) error {
	record, err := h.ppbService.Get(c.Request().Context(), c.Param("licenseNumber"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, record)
}
