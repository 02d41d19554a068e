package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

type BookingService interface {
	// CheckAndBook associates an artist with an event after verifying none
	// of the artist's existing bookings overlaps the event's dates.
	CheckAndBook(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error)
	GetByID(ctx context.Context, id uint) (*models.ArtistBooking, error)
	ListByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error)
	Delete(ctx context.Context, id uint) error
}

type bookingService struct {
	bookings  repository.BookingRepository
	artists   repository.ArtistRepository
	events    repository.EventRepository
	publisher Publisher
}

func NewBookingService(
	bookings repository.BookingRepository,
	artists repository.ArtistRepository,
	events repository.EventRepository,
	publisher Publisher,
) BookingService {
	return &bookingService{
		bookings:  bookings,
		artists:   artists,
		events:    events,
		publisher: publisher,
	}
}

// CheckAndBook locks the artist row for the duration of the check-then-book
// transaction, so two concurrent requests for the same artist serialize and
// the second one sees the first one's booking.
func (s *bookingService) CheckAndBook(ctx context.Context, artistID, eventID uint) (*models.ArtistBooking, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	var booking *models.ArtistBooking
	err = s.bookings.InTx(ctx, func(tx *gorm.DB) error {
		if _, err := s.artists.FindByIDForUpdate(ctx, tx, artistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return fmt.Errorf("lock artist: %w", err)
		}

		existing, err := s.bookings.FindByArtistWithEvents(ctx, tx, artistID)
		if err != nil {
			return fmt.Errorf("load artist bookings: %w", err)
		}

		if conflictID, found := findConflict(event, existing); found {
			return &SchedulingConflictError{ArtistID: artistID, ConflictingEventID: conflictID}
		}

		booking = &models.ArtistBooking{ArtistID: artistID, EventID: eventID}
		return s.bookings.Create(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.notify(RoutingKeyArtistBooked, booking)
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id uint) (*models.ArtistBooking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
	if _, err := s.artists.FindByID(ctx, artistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return s.bookings.FindByArtist(ctx, artistID)
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

func (s *bookingService) notify(key string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(key, payload); err != nil {
		log.Printf("[Booking] publish %s failed: %v", key, err)
	}
}

// findConflict returns the first already-booked event whose date range
// overlaps the target event's.
func findConflict(target *models.Event, bookings []models.ArtistBooking) (uint, bool) {
	for _, b := range bookings {
		if b.Event == nil {
			continue
		}
		if rangesOverlap(target.StartDate, target.EndDate, b.Event.StartDate, b.Event.EndDate) {
			return b.EventID, true
		}
	}
	return 0, false
}

// rangesOverlap treats both ranges as inclusive: sharing a boundary day is
// an overlap.
func rangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}
