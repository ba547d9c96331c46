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

type PurchaseOrderHandler struct {
	Orders   *service.PurchaseOrderService
	Producer *mykafka.Producer
}

func (h *PurchaseOrderHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "purchase_events", fmt.Sprint(event["purchaseId"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *PurchaseOrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.Orders.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *PurchaseOrderHandler) GetOrder(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := h.Orders.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if order == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *PurchaseOrderHandler) CreateOrder(c echo.Context) error {
	var order models.PurchaseOrder
	if err := c.Bind(&order); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Orders.Add(&order)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{
			"type":       "purchase_order_created",
			"purchaseId": order.PurchaseID,
			"vendorId":   order.VendorID,
			"lines":      len(order.PurchaseItems),
		})
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *PurchaseOrderHandler) UpdateOrder(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var order models.PurchaseOrder
	if err := c.Bind(&order); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != order.PurchaseID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Orders.Update(&order)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}

func (h *PurchaseOrderHandler) DeleteOrder(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Orders.DeleteByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "purchase_order_deleted", "purchaseId": id})
	}
	return respondResult(c, res, http.StatusNoContent)
}

type PurchaseItemHandler struct {
	Lines *service.PurchaseItemService
}

func (h *PurchaseItemHandler) GetLine(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	line, err := h.Lines.FindByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if line == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *PurchaseItemHandler) UpdateLine(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var line models.PurchaseItem
	if err := c.Bind(&line); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != line.PurchaseItemID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Lines.Update(&line)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusOK)
}

func (h *PurchaseItemHandler) DeleteLine(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Lines.DeleteByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}
