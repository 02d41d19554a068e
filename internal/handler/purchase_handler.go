package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

type PurchaseHandler struct {
	svc service.PurchaseService
}

func NewPurchaseHandler(svc service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreatePurchase)
	g.GET("", h.ListPurchases)
	g.GET("/:id", h.GetPurchase)
	g.PUT("/:id/estado", h.UpdateStatus)
	g.DELETE("/:id", h.DeletePurchase)
	g.GET("/usuario/:idUsuario", h.ListByUser)
	g.GET("/evento/:idEvento", h.ListByEvent)
}

func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	var req dto.CreatePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	purchase, err := h.svc.Create(c.Request().Context(), service.PurchaseInput{
		UserID:          req.UserID,
		TierID:          req.TierID,
		Quantity:        req.Quantity,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuantityOutOfRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTierNotFound),
			errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrPaymentMethodNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInsufficientStock):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}

	return c.JSON(http.StatusCreated, purchase)
}

func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	purchase, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, purchase)
}

// ListPurchases returns every purchase, or only those inside [desde, hasta]
// when both query params are present.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	ctx := c.Request().Context()

	from := c.QueryParam("desde")
	to := c.QueryParam("hasta")
	if from != "" && to != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid desde date")
		}
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid hasta date")
		}
		purchases, err := h.svc.ListByDateRange(ctx, fromDate, toDate)
		if err != nil {
			return internalError(err)
		}
		return c.JSON(http.StatusOK, purchases)
	}

	purchases, err := h.svc.List(ctx)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, purchases)
}

func (h *PurchaseHandler) ListByUser(c echo.Context) error {
	purchases, err := h.svc.ListByUser(c.Request().Context(), c.Param("idUsuario"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, purchases)
}

func (h *PurchaseHandler) ListByEvent(c echo.Context) error {
	eventID, err := parseID(c, "idEvento")
	if err != nil {
		return err
	}

	purchases, err := h.svc.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, purchases)
}

func (h *PurchaseHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePurchaseStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	purchase, err := h.svc.UpdateStatus(c.Request().Context(), id, req.StatusID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPurchaseNotFound),
			errors.Is(err, service.ErrTxStatusNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return internalError(err)
		}
	}

	return c.JSON(http.StatusOK, purchase)
}

func (h *PurchaseHandler) DeletePurchase(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseID reads a positive numeric path param.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func parseQueryID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
