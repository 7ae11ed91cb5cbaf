package user

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicd/internal/platform/auth"
	"github.com/clinicdesk/clinicd/pkg/pagination"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenService
}

func NewHandler(svc *Service, tokens *auth.TokenService) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, requireToken, requireAdmin echo.MiddlewareFunc) {
	e.GET("/user", h.List, requireToken, requireAdmin)
	e.PUT("/user/:email", h.Upsert)
	e.PUT("/user/admin/:email", h.MakeAdmin, requireToken, requireAdmin)
	e.GET("/admin/:email", h.CheckAdmin, requireToken)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	users, total, err := h.svc.List(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user store unavailable")
	}
	if users == nil {
		users = []*User{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(users, total, p.Limit, p.Offset))
}

type upsertRequest struct {
	Name string `json:"name"`
}

// upsertResponse pairs the stored user with a fresh access token, so sign-in
// is a single round trip for the client.
type upsertResponse struct {
	Result *User  `json:"result"`
	Token  string `json:"token"`
}

func (h *Handler) Upsert(c echo.Context) error {
	email := c.Param("email")
	var req upsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	u, err := h.svc.Upsert(c.Request().Context(), email, req.Name)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user store unavailable")
	}

	token, err := h.tokens.Issue(u.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "token issue failed")
	}
	return c.JSON(http.StatusOK, upsertResponse{Result: u, Token: token})
}

func (h *Handler) MakeAdmin(c echo.Context) error {
	email := c.Param("email")
	err := h.svc.MakeAdmin(c.Request().Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user store unavailable")
	}
	return c.JSON(http.StatusOK, map[string]bool{"updated": true})
}

func (h *Handler) CheckAdmin(c echo.Context) error {
	email := c.Param("email")
	isAdmin, err := h.svc.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "user store unavailable")
	}
	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}
