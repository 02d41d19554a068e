package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/service"
)

// --- Mock BookingService ---

type mockBookingService struct {
	bookFn   func(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error)
	getFn    func(ctx context.Context, id uint) (*models.ArtistBooking, error)
	listFn   func(ctx context.Context, artistID uint) ([]models.ArtistBooking, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockBookingService) CheckAndBook(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
	return m.bookFn(ctx, artistID, eventID)
}
func (m *mockBookingService) GetByID(ctx context.Context, id uint) (*models.ArtistBooking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
	return m.listFn(ctx, artistID)
}
func (m *mockBookingService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestCreateBooking_Handler_Created(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
			return &models.ArtistBooking{ID: 1, ArtistID: artistID, EventID: eventID}, nil
		},
	}

	body := `{"idArtista":3,"idEvento":7}`
	c, rec := newContext(t, http.MethodPost, "/api/v1/artista-eventos", body)

	err := NewBookingHandler(svc).CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ArtistBooking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(3), resp.ArtistID)
	assert.Equal(t, uint(7), resp.EventID)
}

func TestCreateBooking_Handler_Conflict(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
			return nil, &service.SchedulingConflictError{ArtistID: artistID, ConflictingEventID: 5}
		},
	}

	body := `{"idArtista":3,"idEvento":7}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/artista-eventos", body)

	err := NewBookingHandler(svc).CreateBooking(c)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))

	he := err.(*echo.HTTPError)
	assert.Contains(t, he.Message.(string), "evento 5")
}

func TestCreateBooking_Handler_ArtistNotFound(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
			return nil, service.ErrArtistNotFound
		},
	}

	body := `{"idArtista":99,"idEvento":7}`
	c, _ := newContext(t, http.MethodPost, "/api/v1/artista-eventos", body)

	err := NewBookingHandler(svc).CreateBooking(c)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreateBooking_Handler_MissingFields(t *testing.T) {
	svc := &mockBookingService{
		bookFn: func(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
			t.Fatal("service must not be called on an invalid request")
			return nil, nil
		},
	}

	c, _ := newContext(t, http.MethodPost, "/api/v1/artista-eventos", `{"idArtista":3}`)

	err := NewBookingHandler(svc).CreateBooking(c)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestDeleteBooking_Handler_NoContent(t *testing.T) {
	svc := &mockBookingService{
		deleteFn: func(ctx context.Context, id uint) error { return nil },
	}

	c, rec := newContext(t, http.MethodDelete, "/api/v1/artista-eventos/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := NewBookingHandler(svc).DeleteBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
