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

type CheckoutOrderHandler struct {
	Orders   *service.CheckoutOrderService
	Producer *mykafka.Producer
}

func (h *CheckoutOrderHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "checkout_events", fmt.Sprint(event["checkoutOrderId"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *CheckoutOrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.Orders.FindAll()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *CheckoutOrderHandler) GetOrder(c echo.Context) error {
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

func (h *CheckoutOrderHandler) GetBusiestHours(c echo.Context) error {
	summary, err := h.Orders.FindHourlyCheckoutSummary()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *CheckoutOrderHandler) CreateOrder(c echo.Context) error {
	var order models.CheckoutOrder
	if err := c.Bind(&order); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	res, err := h.Orders.Add(&order)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{
			"type":            "checkout_order_created",
			"checkoutOrderId": order.CheckoutOrderID,
			"studentId":       order.StudentID,
			"lines":           len(order.CheckoutItems),
		})
	}
	return respondResult(c, res, http.StatusCreated)
}

func (h *CheckoutOrderHandler) UpdateOrder(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var order models.CheckoutOrder
	if err := c.Bind(&order); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != order.CheckoutOrderID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Orders.Update(&order)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusNoContent)
}

func (h *CheckoutOrderHandler) DeleteOrder(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	res, err := h.Orders.DeleteByID(id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	if res.IsSuccess() {
		h.publish(c, map[string]any{"type": "checkout_order_deleted", "checkoutOrderId": id})
	}
	return respondResult(c, res, http.StatusNoContent)
}

type CheckoutItemHandler struct {
	Lines *service.CheckoutItemService
}

func (h *CheckoutItemHandler) GetLine(c echo.Context) error {
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

func (h *CheckoutItemHandler) GetPopularItems(c echo.Context) error {
	rows, err := h.Lines.FindPopularItems()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CheckoutItemHandler) GetPopularCategories(c echo.Context) error {
	rows, err := h.Lines.FindPopularCategories()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CheckoutItemHandler) UpdateLine(c echo.Context) error {
	id := parseIntDefault(c.Param("id"), 0)

	var line models.CheckoutItem
	if err := c.Bind(&line); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if id != line.CheckoutItemID {
		return c.NoContent(http.StatusConflict)
	}

	res, err := h.Lines.Update(&line)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return respondResult(c, res, http.StatusOK)
}

func (h *CheckoutItemHandler) DeleteLine(c echo.Context) error {
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
