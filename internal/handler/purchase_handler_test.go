package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/dto"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

// --- Mock PurchaseService ---

type mockPurchaseService struct {
	createFn       func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error)
	getFn          func(ctx context.Context, id uint) (*models.Purchase, error)
	updateStatusFn func(ctx context.Context, id, statusID uint) (*models.Purchase, error)
	deleteFn       func(ctx context.Context, id uint) error
}

func (m *mockPurchaseService) Create(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
	return m.createFn(ctx, in)
}
func (m *mockPurchaseService) GetByID(ctx context.Context, id uint) (*models.Purchase, error) {
	return m.getFn(ctx, id)
}
func (m *mockPurchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	return nil, nil
}
func (m *mockPurchaseService) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	return nil, nil
}
func (m *mockPurchaseService) ListByEvent(ctx context.Context, eventID uint) ([]models.Purchase, error) {
	return nil, nil
}
func (m *mockPurchaseService) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Purchase, error) {
	return nil, nil
}
func (m *mockPurchaseService) UpdateStatus(ctx context.Context, id, statusID uint) (*models.Purchase, error) {
	return m.updateStatusFn(ctx, id, statusID)
}
func (m *mockPurchaseService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = dto.NewRequestValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestCreatePurchase_Handler_Created(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			return &models.Purchase{
				ID:              1,
				UserID:          in.UserID,
				TierID:          in.TierID,
				Quantity:        in.Quantity,
				TotalValue:      int64(in.Quantity) * 50_000_00,
				StatusID:        1,
				PaymentMethodID: in.PaymentMethodID,
			}, nil
		},
	}

	body := `{"idUsuario":"1098765432","idLocalidadDetalle":1,"cantidadBoletas":4,"idMetodoPago":2}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/compras", body)

	h := NewPurchaseHandler(svc)
	err := h.CreatePurchase(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Purchase
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, int64(4*50_000_00), resp.TotalValue)
}

func TestCreatePurchase_Handler_QuantityTooHigh(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			return nil, service.ErrQuantityOutOfRange
		},
	}

	body := `{"idUsuario":"1098765432","idLocalidadDetalle":1,"cantidadBoletas":11,"idMetodoPago":2}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/compras", body)

	err := NewPurchaseHandler(svc).CreatePurchase(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestCreatePurchase_Handler_MissingFields(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			t.Fatal("service must not be called on an invalid request")
			return nil, nil
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/v1/compras", `{"cantidadBoletas":2}`)

	err := NewPurchaseHandler(svc).CreatePurchase(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestCreatePurchase_Handler_TierNotFound(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			return nil, service.ErrTierNotFound
		},
	}

	body := `{"idUsuario":"1","idLocalidadDetalle":99,"cantidadBoletas":2,"idMetodoPago":1}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/compras", body)

	err := NewPurchaseHandler(svc).CreatePurchase(c)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreatePurchase_Handler_InsufficientStock(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			return nil, &service.InsufficientStockError{TierID: 1, Requested: 6, Available: 5}
		},
	}

	body := `{"idUsuario":"1","idLocalidadDetalle":1,"cantidadBoletas":6,"idMetodoPago":1}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/compras", body)

	err := NewPurchaseHandler(svc).CreatePurchase(c)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))

	he := err.(*echo.HTTPError)
	assert.Contains(t, he.Message.(string), "quedan 5")
}

// Unmapped failures answer with a generic 500: the store's error text stays
// out of the response.
func TestCreatePurchase_Handler_StoreErrorHidden(t *testing.T) {
	svc := &mockPurchaseService{
		createFn: func(ctx context.Context, in service.PurchaseInput) (*models.Purchase, error) {
			return nil, errors.New(`persist purchase: ERROR: duplicate key value violates unique constraint "compras_pkey"`)
		},
	}

	body := `{"idUsuario":"1","idLocalidadDetalle":1,"cantidadBoletas":2,"idMetodoPago":1}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/compras", body)

	err := NewPurchaseHandler(svc).CreatePurchase(c)
	assert.Equal(t, http.StatusInternalServerError, httpCode(t, err))

	he := err.(*echo.HTTPError)
	assert.Equal(t, "error interno del servidor", he.Message)
}

func TestGetPurchase_Handler_NotFound(t *testing.T) {
	svc := &mockPurchaseService{
		getFn: func(ctx context.Context, id uint) (*models.Purchase, error) {
			return nil, service.ErrPurchaseNotFound
		},
	}

	c, _ := newContext(t, http.MethodGet, "/api/v1/compras/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := NewPurchaseHandler(svc).GetPurchase(c)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestGetPurchase_Handler_InvalidID(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/api/v1/compras/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := NewPurchaseHandler(&mockPurchaseService{}).GetPurchase(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}
