package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateEvent)
	g.GET("", h.ListEvents)
	g.GET("/:id", h.GetEvent)
	g.PUT("/:id", h.UpdateEvent)
	g.DELETE("/:id", h.DeleteEvent)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	event, err := bindEvent(c)
	if err != nil {
		return err
	}

	if err := h.svc.Create(c.Request().Context(), event); err != nil {
		return eventError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// ListEvents supports filtering by municipio, status, or upcoming-only via
// query params; without filters it returns everything.
func (h *EventHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		events []models.Event
		err    error
	)
	switch {
	case c.QueryParam("idMunicipio") != "":
		var municipioID uint
		if municipioID, err = parseQueryID(c, "idMunicipio"); err != nil {
			return err
		}
		events, err = h.svc.ListByMunicipio(ctx, municipioID)
	case c.QueryParam("idEstadoEvento") != "":
		var statusID uint
		if statusID, err = parseQueryID(c, "idEstadoEvento"); err != nil {
			return err
		}
		events, err = h.svc.ListByStatus(ctx, statusID)
	case c.QueryParam("proximos") == "true":
		events, err = h.svc.ListUpcoming(ctx)
	default:
		events, err = h.svc.List(ctx)
	}
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	event, err := bindEvent(c)
	if err != nil {
		return err
	}
	event.ID = id

	if err := h.svc.Update(c.Request().Context(), event); err != nil {
		return eventError(err)
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEventHasTiers),
			errors.Is(err, service.ErrEventHasArtists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func bindEvent(c echo.Context) (*models.Event, error) {
	var req dto.EventRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	return &models.Event{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		StartTime:   req.StartTime,
		EndDate:     endDate,
		EndTime:     req.EndTime,
		Venue:       req.Venue,
		MunicipioID: req.MunicipioID,
		StatusID:    req.StatusID,
	}, nil
}

func eventError(err error) error {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEventDatesInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMunicipioNotFound),
		errors.Is(err, service.ErrEventStatusNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEventNameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return internalError(err)
	}
}
