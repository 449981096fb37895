package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	filter := repo.ProductFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	}

	products, err := h.Svc.List(ctx, filter)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OKCount(products, len(products)))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(product))
}

func (h *ProductHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.Svc.Categories(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(categories))
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		l.Warn("product_create_error", "error", err)
		return httpError(err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, transport.OK(product))
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		l.Warn("product_update_error", "error", err)
		return httpError(err)
	}

	l.Info("update_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.OK(product))
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		l.Warn("product_delete_error", "error", err)
		return httpError(err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.OK(map[string]any{}))
}
