package booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicd/internal/platform/auth"
	"github.com/clinicdesk/clinicd/internal/platform/payments"
)

type Handler struct {
	svc     *Service
	gateway payments.Gateway
}

func NewHandler(svc *Service, gateway payments.Gateway) *Handler {
	return &Handler{svc: svc, gateway: gateway}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, requireToken echo.MiddlewareFunc) {
	e.POST("/bookings", h.Create)
	e.GET("/booking", h.ListByEmail, requireToken)
	e.GET("/bookings/:id", h.GetByID, requireToken)
	e.PATCH("/bookings/:id", h.ConfirmPayment, requireToken)
	e.POST("/create-payment-intent", h.CreatePaymentIntent, requireToken)
}

// createResponse reports whether the slot was newly booked. When booked is
// false the booking field carries the caller's existing booking for the
// same service, date and slot.
type createResponse struct {
	Booked  bool     `json:"booked"`
	Booking *Booking `json:"booking"`
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	b, created, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "booking store unavailable")
	}
	return c.JSON(http.StatusOK, createResponse{Booked: created, Booking: b})
}

func (h *Handler) ListByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter required")
	}
	if auth.EmailFromContext(c.Request().Context()) != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}
	items, err := h.svc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "booking store unavailable")
	}
	if items == nil {
		items = []*Booking{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	b, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Absent bookings render as a JSON null body.
			return c.JSON(http.StatusOK, nil)
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "booking store unavailable")
	}
	return c.JSON(http.StatusOK, b)
}

type confirmRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

func (h *Handler) ConfirmPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	email := auth.EmailFromContext(c.Request().Context())
	b, err := h.svc.ConfirmPayment(c.Request().Context(), id, req.TransactionID,
		payments.CentsFromPrice(req.Amount), "usd", email)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		case errors.Is(err, ErrPaymentConflict):
			return echo.NewHTTPError(http.StatusConflict, "booking already paid with a different transaction")
		}
		return echo.NewHTTPError(http.StatusServiceUnavailable, "booking store unavailable")
	}
	return c.JSON(http.StatusOK, b)
}

type intentRequest struct {
	Price float64 `json:"price"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *Handler) CreatePaymentIntent(c echo.Context) error {
	var req intentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	email := auth.EmailFromContext(c.Request().Context())
	secret, err := h.gateway.CreateIntent(c.Request().Context(),
		payments.CentsFromPrice(req.Price), "usd", email)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "payment gateway error")
	}
	return c.JSON(http.StatusOK, intentResponse{ClientSecret: secret})
}
