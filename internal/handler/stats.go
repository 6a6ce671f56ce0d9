package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.statsSvc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) RecentEvents(c echo.Context) error {
	events, err := h.statsSvc.RecentEvents(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}
