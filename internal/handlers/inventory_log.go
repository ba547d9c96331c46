package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/retriever-essentials/pantry/internal/models"
	"github.com/retriever-essentials/pantry/internal/mykafka"
	"github.com/retriever-essentials/pantry/internal/service"
)

type InventoryLogHandler struct {
	Logs     *service.InventoryLogService
	Producer *mykafka.Producer
}

func (h *InventoryLogHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "inventory_events", fmt.Sprint(event["itemId"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *InventoryLogHandler) GetLogs(c echo.Context) error {
	logs, err := h.Logs.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *InventoryLogHandler) GetLog(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	log, err := h.Logs.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if log == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, log)
}

func (h *InventoryLogHandler) GetLogsByItem(c echo.Context) error {
	itemID := parseIntDefault(c.Param("itemId"), 0)
	if itemID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	logs, err := h.Logs.FindByItemID(itemID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *InventoryLogHandler) GetLogsByAuthority(c echo.Context) error {
	authorityID := parseIntDefault(c.Param("authorityId"), 0)
	if authorityID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid authority id")
	}

	logs, err := h.Logs.FindByAuthorityID(authorityID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *InventoryLogHandler) GetLogsByItemName(c echo.Context) error {
	logs, err := h.Logs.FindByItemName(c.Param("name"))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *InventoryLogHandler) GetLogsByAuthorityEmail(c echo.Context) error {
	logs, err := h.Logs.FindByAuthorityEmail(c.Param("email"))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *InventoryLogHandler) CreateLog(c echo.Context) error {
	var log models.InventoryLog
	if err := c.Bind(&log); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Logs.Add(&log)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{
			"type":           "inventory_adjusted",
			"logId":          log.LogID,
			"itemId":         log.ItemID,
			"quantityChange": log.QuantityChange,
		})
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *InventoryLogHandler) UpdateLog(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var log models.InventoryLog
	if err := c.Bind(&log); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != log.LogID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Logs.Update(&log)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}

func (h *InventoryLogHandler) DeleteLog(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Logs.DeleteByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}
