package purchase

import (
	"errors"
	"net/http"

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

// RegisterRoutes wires the purchase endpoints. The group is expected to sit
// behind auth.RequireUser.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/purchases", h.CreatePurchase)
	api.GET("/purchases", h.ListPurchases)
}

type createPurchaseRequest struct {
	MedicineID     string `json:"medicine_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (h *Handler) CreatePurchase(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req createPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	medicineID, err := uuid.Parse(req.MedicineID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicine_id")
	}

	p, created, err := h.svc.Buy(c.Request().Context(), userID, medicineID, req.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, ErrMedicineNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "medicine not found")
		case errors.Is(err, ErrPrescriptionRequired):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "medicine requires a prescription")
		case errors.Is(err, ErrOutOfStock):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "medicine is out of stock")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create purchase")
	}
	if !created {
		return c.JSON(http.StatusOK, p)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListPurchases(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load purchases")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
