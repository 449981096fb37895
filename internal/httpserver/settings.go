package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/service"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

func (h *SettingsHTTP) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.Svc.Get(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, transport.OK(settings))
}

func (h *SettingsHTTP) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.update")

	var updates map[string]any
	if err := c.Bind(&updates); err != nil {
		l.Warn("settings_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	settings, err := h.Svc.Update(ctx, updates)
	if err != nil {
		l.Warn("settings_update_error", "error", err)
		return httpError(err)
	}

	l.Info("settings_updated", "keys", len(updates))
	return c.JSON(http.StatusOK, transport.OK(settings))
}
