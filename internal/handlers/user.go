package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/service"
)

// UserHandler exposes the admin-only account management endpoints.
type UserHandler struct {
	Users *service.AppUserService
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.Users.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	user, err := h.Users.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if user == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user := models.AppUser{
		Email:   req.Email,
		Role:    req.Role,
		Enabled: true,
	}
	res, err := h.Users.Add(&user, req.Password)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Users.ChangePassword(id, req.Password)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}

func (h *UserHandler) EnableUser(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Users.EnableByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}

func (h *UserHandler) DisableUser(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Users.DisableByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}
