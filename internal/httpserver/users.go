package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Svc.List(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OKCount(users, len(users)))
}

func (h *UserHTTP) GetUserStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(stats))
}
