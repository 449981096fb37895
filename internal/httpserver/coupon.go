package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type CouponHTTP struct {
	Svc *service.CouponService
}

func (h *CouponHTTP) ValidateCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.validate")

	var req transport.ValidateCouponRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("coupon_validate_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	result, err := h.Svc.Validate(ctx, req.Code, req.OrderTotal)
	if err != nil {
		l.Warn("coupon_validate_error", "code", req.Code, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(result))
}

func (h *CouponHTTP) GetCoupons(c echo.Context) error {
	ctx := c.Request().Context()

	coupons, err := h.Svc.List(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(coupons))
}

func (h *CouponHTTP) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.create")

	var req transport.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("coupon_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	coupon, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Warn("coupon_create_error", "error", err)
		return httpError(err)
	}

	l.Info("coupon_create_success", "coupon_id", coupon.ID, "code", coupon.Code)
	return c.JSON(http.StatusCreated, transport.OK(coupon))
}

func (h *CouponHTTP) DeleteCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(map[string]any{}))
}
