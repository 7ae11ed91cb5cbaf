package doctor

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicd/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the roster endpoints. The entire roster surface is
// admin-only.
func (h *Handler) RegisterRoutes(e *echo.Echo, requireToken, requireAdmin echo.MiddlewareFunc) {
	g := e.Group("/doctors", requireToken, requireAdmin)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.DELETE("/:email", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	doctors, total, err := h.svc.List(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "doctor store unavailable")
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(doctors, total, p.Limit, p.Offset))
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	d, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicate):
			return echo.NewHTTPError(http.StatusConflict, "doctor already exists")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "doctor store unavailable")
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Delete(c echo.Context) error {
	deleted, err := h.svc.Delete(c.Request().Context(), c.Param("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "doctor store unavailable")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}
