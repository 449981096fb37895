package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) GetProductReviews(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	reviews, err := h.Svc.ListByProduct(ctx, productID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(reviews))
}

func (h *ReviewHTTP) SubmitReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.submit")

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req transport.ReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("review_submit_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.Upsert(ctx, userID, req)
	if err != nil {
		l.Warn("review_submit_error", "product_id", req.ProductID, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, transport.OK(review))
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id, userID, requesterRole(c)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(map[string]any{}))
}
