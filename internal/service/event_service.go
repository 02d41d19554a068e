package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

type EventService interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	ListByMunicipio(ctx context.Context, municipioID uint) ([]models.Event, error)
	ListByStatus(ctx context.Context, statusID uint) ([]models.Event, error)
	ListUpcoming(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
}

type eventService struct {
	events   repository.EventRepository
	tiers    repository.TierRepository
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
}

func NewEventService(
	events repository.EventRepository,
	tiers repository.TierRepository,
	bookings repository.BookingRepository,
	catalog repository.CatalogRepository,
) EventService {
	return &eventService{events: events, tiers: tiers, bookings: bookings, catalog: catalog}
}

func (s *eventService) Create(ctx context.Context, event *models.Event) error {
	if err := s.validate(ctx, event); err != nil {
		return err
	}

	existing, err := s.events.FindByName(ctx, event.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check event name: %w", err)
	}
	if existing != nil {
		return ErrEventNameTaken
	}

	return s.events.Create(ctx, event)
}

func (s *eventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) ListByMunicipio(ctx context.Context, municipioID uint) ([]models.Event, error) {
	return s.events.FindByMunicipio(ctx, municipioID)
}

func (s *eventService) ListByStatus(ctx context.Context, statusID uint) ([]models.Event, error) {
	return s.events.FindByStatus(ctx, statusID)
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	return s.events.FindUpcoming(ctx, today())
}

func (s *eventService) Update(ctx context.Context, event *models.Event) error {
	current, err := s.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, event); err != nil {
		return err
	}

	if event.Name != current.Name {
		existing, err := s.events.FindByName(ctx, event.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check event name: %w", err)
		}
		if existing != nil {
			return ErrEventNameTaken
		}
	}

	return s.events.Update(ctx, event)
}

// Delete refuses while pricing tiers or artist bookings still reference the
// event; those have to be removed first.
func (s *eventService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	tierCount, err := s.tiers.CountByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("count tiers: %w", err)
	}
	if tierCount > 0 {
		return ErrEventHasTiers
	}

	bookingCount, err := s.bookings.CountByEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if bookingCount > 0 {
		return ErrEventHasArtists
	}

	return s.events.Delete(ctx, id)
}

func (s *eventService) validate(ctx context.Context, event *models.Event) error {
	if event.EndDate.Before(event.StartDate) {
		return ErrEventDatesInvalid
	}
	if event.EndDate.Equal(event.StartDate) && event.EndTime < event.StartTime {
		return ErrEventDatesInvalid
	}

	ok, err := s.catalog.MunicipioExists(ctx, event.MunicipioID)
	if err != nil {
		return fmt.Errorf("check municipio: %w", err)
	}
	if !ok {
		return ErrMunicipioNotFound
	}

	ok, err = s.catalog.EventStatusExists(ctx, event.StatusID)
	if err != nil {
		return fmt.Errorf("check event status: %w", err)
	}
	if !ok {
		return ErrEventStatusNotFound
	}

	return nil
}
