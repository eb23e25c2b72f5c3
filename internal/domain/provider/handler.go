package provider

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carelink/carelink/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/featured", h.FeaturedDoctors)
	api.GET("/doctors/:id", h.GetDoctor)

	api.GET("/specialists", h.ListSpecialists)
	api.GET("/specialists/specialties", h.ListSpecialties)
	api.GET("/specialists/:id", h.GetSpecialist)
}

func filtersFromContext(c echo.Context) Filters {
	return Filters{
		Search:    c.QueryParam("search"),
		Location:  c.QueryParam("location"),
		Specialty: c.QueryParam("specialty"),
	}
}

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchDoctors(c.Request().Context(), filtersFromContext(c), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctors")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) FeaturedDoctors(c echo.Context) error {
	items, err := h.svc.FeaturedDoctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load featured doctors")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, len(items), len(items), 0))
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctor")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListSpecialists(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchSpecialists(c.Request().Context(), filtersFromContext(c), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load specialists")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListSpecialties(c echo.Context) error {
	specialties, err := h.svc.SpecialistSpecialties(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load specialties")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(specialties, len(specialties), len(specialties), 0))
}

func (h *Handler) GetSpecialist(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	s, err := h.svc.GetSpecialist(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "specialist not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load specialist")
	}
	return c.JSON(http.StatusOK, s)
}
