package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/services", h.ListServices)
	e.GET("/available", h.Availability)
}

func (h *Handler) ListServices(c echo.Context) error {
	names, err := h.catalog.ListNames(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service catalog unavailable")
	}
	return c.JSON(http.StatusOK, names)
}

func (h *Handler) Availability(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter required")
	}
	slots, err := h.catalog.Availability(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service catalog unavailable")
	}
	return c.JSON(http.StatusOK, slots)
}
