package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Payments *service.PaymentService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, userID, req)
	if err != nil {
		l.Warn("create_order_error", "error", err)
		return httpError(err)
	}

	l.Info("create_order_success", "order_id", order.ID, "total", order.Total)
	return c.JSON(http.StatusCreated, transport.OK(order))
}

func (h *OrderHTTP) GetMyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	orders, err := h.Svc.ListMyOrders(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OKCount(orders, len(orders)))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Svc.GetOrder(ctx, id, userID, requesterRole(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(order))
}

func (h *OrderHTTP) GetAllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Svc.ListAllOrders(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OKCount(orders, len(orders)))
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		l.Warn("update_status_error", "error", err)
		return httpError(err)
	}

	l.Info("update_status_success", "order_id", order.ID, "order_status", order.Status)
	return c.JSON(http.StatusOK, transport.OK(order))
}

func (h *OrderHTTP) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_payment_intent")

	var req transport.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("payment_intent_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	result, err := h.Payments.CreateIntent(ctx, req)
	if err != nil {
		l.Warn("payment_intent_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(result))
}
