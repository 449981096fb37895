package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	products, err := h.Svc.List(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(products))
}

func (h *WishlistHTTP) AddToWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req transport.WishlistAddRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("wishlist_add_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	products, err := h.Svc.Add(ctx, userID, req.ProductID)
	if err != nil {
		l.Warn("wishlist_add_error", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(products))
}

func (h *WishlistHTTP) RemoveFromWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	products, err := h.Svc.Remove(ctx, userID, productID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(products))
}
