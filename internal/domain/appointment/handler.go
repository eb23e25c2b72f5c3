package appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/internal/platform/auth"
	"github.com/carelink/carelink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the appointment endpoints. The group is expected to
// sit behind auth.RequireUser.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments", h.ListAppointments)
}

type createAppointmentRequest struct {
	ProviderID       string  `json:"provider_id"`
	AppointmentDate  string  `json:"appointment_date"`
	ConsultationType string  `json:"consultation_type"`
	Fee              float64 `json:"fee"`
	IdempotencyKey   string  `json:"idempotency_key"`
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid provider_id")
	}
	var date time.Time
	if req.AppointmentDate != "" {
		date, err = time.Parse(time.RFC3339, req.AppointmentDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment_date, expected RFC 3339")
		}
	}

	a, created, err := h.svc.Book(c.Request().Context(), userID, BookingRequest{
		ProviderID:       providerID,
		AppointmentDate:  date,
		ConsultationType: req.ConsultationType,
		Fee:              req.Fee,
		IdempotencyKey:   req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDateRequired), errors.Is(err, ErrDateInPast), errors.Is(err, ErrInvalidConsultationType):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to book appointment")
	}
	if !created {
		return c.JSON(http.StatusOK, a)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
