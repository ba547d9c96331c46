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

type ItemHandler struct {
	Items    *service.ItemService
	Producer *mykafka.Producer
}

func (h *ItemHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "inventory_events", fmt.Sprint(event["itemId"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	items, err := h.Items.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetEnabledItems(c echo.Context) error {
	items, err := h.Items.FindAllEnabled()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := h.Items.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if item == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) GetItemsByCategory(c echo.Context) error {
	items, err := h.Items.FindByCategory(c.Param("category"))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var item models.Item
	if err := c.Bind(&item); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Items.Add(&item)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "item_created", "itemId": item.ItemID, "name": item.ItemName})
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var item models.Item
	if err := c.Bind(&item); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != item.ItemID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Items.Update(&item)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "item_updated", "itemId": item.ItemID, "name": item.ItemName})
	}
	return respondResult(c, res, http.StatusOK)
}

// DeleteItem disables rather than removes; order and log history keeps its
// foreign keys.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Items.DisableByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "item_disabled", "itemId": id})
	}
	return respondResult(c, res, http.StatusNoContent)
}
