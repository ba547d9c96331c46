package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/service"
)

type VendorHandler struct {
	Vendors *service.VendorService
}

func (h *VendorHandler) GetVendors(c echo.Context) error {
	vendors, err := h.Vendors.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, vendors)
}

func (h *VendorHandler) GetVendor(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	vendor, err := h.Vendors.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if vendor == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var vendor models.Vendor
	if err := c.Bind(&vendor); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Vendors.Add(&vendor)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var vendor models.Vendor
	if err := c.Bind(&vendor); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != vendor.VendorID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Vendors.Update(&vendor)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusOK)
}

func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Vendors.DeleteByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}
