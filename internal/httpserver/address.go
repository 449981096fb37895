package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type AddressHTTP struct {
	Svc *service.AddressService
}

func (h *AddressHTTP) GetAddresses(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	addresses, err := h.Svc.List(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(addresses))
}

func (h *AddressHTTP) CreateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.create")

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req transport.AddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("address_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	address, err := h.Svc.Create(ctx, userID, req)
	if err != nil {
		l.Warn("address_create_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, transport.OK(address))
}

func (h *AddressHTTP) UpdateAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "address.update")

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.AddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("address_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	address, err := h.Svc.Update(ctx, id, userID, req)
	if err != nil {
		l.Warn("address_update_error", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(address))
}

func (h *AddressHTTP) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id, userID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(map[string]any{}))
}

func (h *AddressHTTP) SetDefaultAddress(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.Svc.SetDefault(ctx, id, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(address))
}
