package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

type TierHandler struct {
	svc    service.TierService
	ledger *service.AvailabilityLedger
}

func NewTierHandler(svc service.TierService, ledger *service.AvailabilityLedger) *TierHandler {
	return &TierHandler{svc: svc, ledger: ledger}
}

func (h *TierHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateTier)
	g.GET("", h.ListTiers)
	g.GET("/:id", h.GetTier)
	g.GET("/:id/disponibilidad", h.GetAvailability)
	g.PUT("/:id", h.UpdateTier)
	g.DELETE("/:id", h.DeleteTier)
	g.GET("/evento/:idEvento", h.ListByEvent)
}

func (h *TierHandler) CreateTier(c echo.Context) error {
	var req dto.CreateTierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tier := &models.PricingTier{
		LocalityID: req.LocalityID,
		EventID:    req.EventID,
		Price:      req.Price,
		Capacity:   req.Capacity,
	}

	if err := h.svc.Create(c.Request().Context(), tier); err != nil {
		switch {
		case errors.Is(err, service.ErrLocalityNotFound),
			errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTierDuplicate):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}

	return c.JSON(http.StatusCreated, tier)
}

func (h *TierHandler) GetTier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tier, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, tier)
}

// GetAvailability reports live availability through the ledger, which may
// serve from cache.
func (h *TierHandler) GetAvailability(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	available, err := h.ledger.Peek(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{TierID: id, Available: available})
}

func (h *TierHandler) ListTiers(c echo.Context) error {
	tiers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, tiers)
}

func (h *TierHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "idEvento")
	if err != nil {
		return err
	}

	tiers, err := h.svc.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, tiers)
}

func (h *TierHandler) UpdateTier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tier, err := h.svc.Update(c.Request().Context(), id, req.Price, req.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTierNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTierCapacityLow):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.JSON(http.StatusOK, tier)
}

func (h *TierHandler) DeleteTier(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrTierNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTierHasPurchases):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}
