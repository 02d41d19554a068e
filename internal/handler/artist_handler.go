package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateArtist)
	g.GET("", h.ListArtists)
	g.GET("/:id", h.GetArtist)
	g.PUT("/:id", h.UpdateArtist)
	g.DELETE("/:id", h.DeleteArtist)
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	artist, err := bindArtist(c)
	if err != nil {
		return err
	}

	if err := h.svc.Create(c.Request().Context(), artist); err != nil {
		return artistError(err)
	}
	return c.JSON(http.StatusCreated, artist)
}

func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	artist, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.List(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	artist, err := bindArtist(c)
	if err != nil {
		return err
	}
	artist.ID = id

	if err := h.svc.Update(c.Request().Context(), artist); err != nil {
		return artistError(err)
	}
	return c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrArtistNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrArtistHasEvents):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func bindArtist(c echo.Context) (*models.Artist, error) {
	var req dto.ArtistRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	return &models.Artist{Name: req.Name, GenreID: req.GenreID, HomeTownID: req.HomeTownID}, nil
}

func artistError(err error) error {
	switch {
	case errors.Is(err, service.ErrArtistNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGenreNotFound),
		errors.Is(err, service.ErrMunicipioNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrArtistNameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return internalError(err)
	}
}
