package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBooking)
	g.GET("/:id", h.GetBooking)
	g.DELETE("/:id", h.DeleteBooking)
	g.GET("/artista/:idArtista", h.ListByArtist)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.CheckAndBook(c.Request().Context(), req.ArtistID, req.EventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArtistNotFound),
			errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSchedulingConflict):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}

	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ListByArtist(c echo.Context) error {
	artistID, err := parseID(c, "idArtista")
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListByArtist(c.Request().Context(), artistID)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
