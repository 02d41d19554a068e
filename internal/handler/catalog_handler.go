package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

// CatalogHandler serves the reference-data endpoints plus the locality and
// role catalogs.
type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/municipios", h.ListMunicipios)
	g.GET("/generos-musicales", h.ListGenres)
	g.GET("/metodos-pago", h.ListPaymentMethods)
	g.GET("/estados-evento", h.ListEventStatuses)
	g.GET("/estados-transaccion", h.ListTransactionStatuses)

	g.POST("/localidades", h.CreateLocality)
	g.GET("/localidades", h.ListLocalities)
	g.GET("/localidades/:id", h.GetLocality)
	g.PUT("/localidades/:id", h.UpdateLocality)
	g.DELETE("/localidades/:id", h.DeleteLocality)

	g.POST("/roles", h.CreateRole)
	g.GET("/roles", h.ListRoles)
}

func (h *CatalogHandler) ListMunicipios(c echo.Context) error {
	out, err := h.svc.ListMunicipios(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListGenres(c echo.Context) error {
	out, err := h.svc.ListGenres(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListPaymentMethods(c echo.Context) error {
	out, err := h.svc.ListPaymentMethods(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListEventStatuses(c echo.Context) error {
	out, err := h.svc.ListEventStatuses(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListTransactionStatuses(c echo.Context) error {
	out, err := h.svc.ListTransactionStatuses(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) CreateLocality(c echo.Context) error {
	var req dto.NameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	locality := &models.Locality{Name: req.Name}
	if err := h.svc.CreateLocality(c.Request().Context(), locality); err != nil {
		if errors.Is(err, service.ErrLocalityNameTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusCreated, locality)
}

func (h *CatalogHandler) GetLocality(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	locality, err := h.svc.GetLocality(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrLocalityNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusOK, locality)
}

func (h *CatalogHandler) ListLocalities(c echo.Context) error {
	out, err := h.svc.ListLocalities(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) UpdateLocality(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.NameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	locality := &models.Locality{ID: id, Name: req.Name}
	if err := h.svc.UpdateLocality(c.Request().Context(), locality); err != nil {
		switch {
		case errors.Is(err, service.ErrLocalityNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLocalityNameTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.JSON(http.StatusOK, locality)
}

func (h *CatalogHandler) DeleteLocality(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteLocality(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrLocalityNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLocalityInUse):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return internalError(err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) CreateRole(c echo.Context) error {
	var req dto.NameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role := &models.Role{Name: req.Name}
	if err := h.svc.CreateRole(c.Request().Context(), role); err != nil {
		if errors.Is(err, service.ErrRoleNameTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return internalError(err)
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *CatalogHandler) ListRoles(c echo.Context) error {
	out, err := h.svc.ListRoles(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, out)
}
