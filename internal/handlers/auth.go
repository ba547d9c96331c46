package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retriever-essentials/pantry/internal/hash"
	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/mykafka"
	"github.com/retriever-essentials/pantry/internal/service"
	"github.com/retriever-essentials/pantry/internal/service/token"
)

type AuthHandler struct {
	Users    *service.AppUserService
	Tokens   *token.Service
	Producer *mykafka.Producer
}

func (h *AuthHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", event["email"].(string), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

// Register creates an AUTHORITY account. Admin accounts are provisioned
// through the admin-only user endpoints.
func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user := models.AppUser{
		Email:   req.Email,
		Role:    models.RoleAuthority,
		Enabled: true,
	}
	res, err := h.Users.Add(&user, req.Password)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "user_registered", "email": user.Email})
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if user == nil || !user.Enabled || !hash.CheckPassword(user.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	access, err := token.SignAccessToken(*user, h.Tokens.JWTSecret)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	refresh, err := token.SignRefreshToken(*user, h.Tokens.RefreshSecret)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if err := h.Tokens.SaveRefreshToken(refresh, user.AppUserID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.publish(c, map[string]any{"type": "user_login", "email": user.Email})

	return c.JSON(http.StatusOK, map[string]string{
		"token":        access,
		"refreshToken": refresh,
	})
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	access, refresh, err := h.Tokens.RotateToken(req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "cannot rotate token: "+err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token":        access,
		"refreshToken": refresh,
	})
}
