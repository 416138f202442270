package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hizmetpinari/internal/errors"
	"hizmetpinari/internal/service"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories godoc
// @Summary List active categories with their services
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// ListServices godoc
// @Summary List active services
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogService.ListServices(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, services)
}

// ListDistricts godoc
// @Summary List districts
// @Tags catalog
// @Produce json
// @Success 200 {array} model.District
// @Router /districts [get]
func (h *CatalogHandler) ListDistricts(c echo.Context) error {
	districts, err := h.catalogService.ListDistricts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, districts)
}
