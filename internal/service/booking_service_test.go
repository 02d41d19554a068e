package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn     func(ctx context.Context, event *models.Event) error
	findByIDFn   func(ctx context.Context, id uint) (*models.Event, error)
	findByNameFn func(ctx context.Context, name string) (*models.Event, error)
	updateFn     func(ctx context.Context, event *models.Event) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	return nil
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventRepo) FindByName(ctx context.Context, name string) (*models.Event, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]models.Event, error) { return nil, nil }
func (m *mockEventRepo) FindByMunicipio(ctx context.Context, municipioID uint) ([]models.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) FindByStatus(ctx context.Context, statusID uint) ([]models.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) FindUpcoming(ctx context.Context, from time.Time) ([]models.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, event)
	}
	return nil
}
func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- Mock ArtistRepository ---

type mockArtistRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
}

func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error { return nil }
func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockArtistRepo) FindByName(ctx context.Context, name string) (*models.Artist, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockArtistRepo) FindAll(ctx context.Context) ([]models.Artist, error) { return nil, nil }
func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error { return nil }
func (m *mockArtistRepo) Delete(ctx context.Context, id uint) error               { return nil }
func (m *mockArtistRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	return m.FindByID(ctx, id)
}
func (m *mockArtistRepo) GetDB() *gorm.DB { return nil }

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *models.ArtistBooking) error
	findByIDFn      func(ctx context.Context, id uint) (*models.ArtistBooking, error)
	findByArtistFn  func(ctx context.Context, artistID uint) ([]models.ArtistBooking, error)
	deleteFn        func(ctx context.Context, id uint) error
	countByArtistFn func(ctx context.Context, artistID uint) (int64, error)
	countByEventFn  func(ctx context.Context, eventID uint) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.ArtistBooking) error {
	if m.createFn != nil {
		return m.createFn(ctx, booking)
	}
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.ArtistBooking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByArtistWithEvents(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.ArtistBooking, error) {
	return m.FindByArtist(ctx, artistID)
}
func (m *mockBookingRepo) FindByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
	if m.findByArtistFn != nil {
		return m.findByArtistFn(ctx, artistID)
	}
	return nil, nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
func (m *mockBookingRepo) CountByArtist(ctx context.Context, artistID uint) (int64, error) {
	if m.countByArtistFn != nil {
		return m.countByArtistFn(ctx, artistID)
	}
	return 0, nil
}
func (m *mockBookingRepo) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	if m.countByEventFn != nil {
		return m.countByEventFn(ctx, eventID)
	}
	return 0, nil
}
func (m *mockBookingRepo) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Tests ---

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eventSpan(id uint, start, end time.Time) *models.Event {
	return &models.Event{ID: id, StartDate: start, EndDate: end}
}

func TestRangesOverlap(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"disjoint before", date(2026, 6, 1), date(2026, 6, 10), date(2026, 6, 11), date(2026, 6, 15), false},
		{"disjoint after", date(2026, 6, 11), date(2026, 6, 15), date(2026, 6, 1), date(2026, 6, 10), false},
		{"contained", date(2026, 6, 1), date(2026, 6, 10), date(2026, 6, 5), date(2026, 6, 8), true},
		{"partial overlap", date(2026, 6, 1), date(2026, 6, 10), date(2026, 6, 8), date(2026, 6, 20), true},
		{"shared boundary day", date(2026, 6, 1), date(2026, 6, 10), date(2026, 6, 10), date(2026, 6, 15), true},
		{"same range", date(2026, 6, 1), date(2026, 6, 10), date(2026, 6, 1), date(2026, 6, 10), true},
		{"single day inside", date(2026, 6, 5), date(2026, 6, 5), date(2026, 6, 1), date(2026, 6, 10), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rangesOverlap(tc.s1, tc.e1, tc.s2, tc.e2))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, rangesOverlap(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestFindConflict(t *testing.T) {
	target := eventSpan(10, date(2026, 6, 1), date(2026, 6, 10))
	bookings := []models.ArtistBooking{
		{ID: 1, EventID: 2, Event: eventSpan(2, date(2026, 5, 1), date(2026, 5, 20))},
		{ID: 2, EventID: 3, Event: eventSpan(3, date(2026, 6, 5), date(2026, 6, 8))},
	}

	conflictID, found := findConflict(target, bookings)

	assert.True(t, found)
	assert.Equal(t, uint(3), conflictID)
}

func TestFindConflict_NoOverlap(t *testing.T) {
	target := eventSpan(10, date(2026, 6, 1), date(2026, 6, 10))
	bookings := []models.ArtistBooking{
		{ID: 1, EventID: 2, Event: eventSpan(2, date(2026, 6, 11), date(2026, 6, 15))},
		{ID: 2, EventID: 3, Event: nil}, // unloaded event is skipped
	}

	_, found := findConflict(target, bookings)
	assert.False(t, found)
}

func TestCheckAndBook_EventNotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockArtistRepo{}, &mockEventRepo{}, nil)

	booking, err := svc.CheckAndBook(context.Background(), 1, 99)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func knownArtist(ctx context.Context, id uint) (*models.Artist, error) {
	return &models.Artist{ID: id, Name: "Los Andariegos"}, nil
}

func TestCheckAndBook_ArtistNotFound(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return eventSpan(id, date(2026, 6, 11), date(2026, 6, 15)), nil
		},
	}
	svc := NewBookingService(&mockBookingRepo{}, &mockArtistRepo{}, events, nil)

	booking, err := svc.CheckAndBook(context.Background(), 42, 10)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

// An artist booked on [1, 10] cannot be booked on an overlapping [5, 8].
func TestCheckAndBook_Conflict(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return eventSpan(id, date(2026, 6, 5), date(2026, 6, 8)), nil
		},
	}
	bookings := &mockBookingRepo{
		findByArtistFn: func(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
			return []models.ArtistBooking{
				{ID: 1, ArtistID: artistID, EventID: 5, Event: eventSpan(5, date(2026, 6, 1), date(2026, 6, 10))},
			}, nil
		},
		createFn: func(ctx context.Context, booking *models.ArtistBooking) error {
			t.Fatal("a conflicting booking must not be created")
			return nil
		},
	}
	svc := NewBookingService(bookings, &mockArtistRepo{findByIDFn: knownArtist}, events, nil)

	booking, err := svc.CheckAndBook(context.Background(), 1, 10)

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	var conflict *SchedulingConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, uint(5), conflict.ConflictingEventID)
	assert.Equal(t, uint(1), conflict.ArtistID)
}

// The same artist is free on a disjoint [11, 15], so the booking goes
// through.
func TestCheckAndBook_Success(t *testing.T) {
	events := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return eventSpan(id, date(2026, 6, 11), date(2026, 6, 15)), nil
		},
	}
	var created *models.ArtistBooking
	bookings := &mockBookingRepo{
		findByArtistFn: func(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
			return []models.ArtistBooking{
				{ID: 1, ArtistID: artistID, EventID: 5, Event: eventSpan(5, date(2026, 6, 1), date(2026, 6, 10))},
			}, nil
		},
		createFn: func(ctx context.Context, booking *models.ArtistBooking) error {
			booking.ID = 2
			created = booking
			return nil
		},
	}
	svc := NewBookingService(bookings, &mockArtistRepo{findByIDFn: knownArtist}, events, nil)

	booking, err := svc.CheckAndBook(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, uint(1), booking.ArtistID)
	assert.Equal(t, uint(10), booking.EventID)
}

func TestListByArtist_ArtistNotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockArtistRepo{}, &mockEventRepo{}, nil)

	_, err := svc.ListByArtist(context.Background(), 42)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	svc := NewBookingService(&mockBookingRepo{}, &mockArtistRepo{}, &mockEventRepo{}, nil)

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking_Success(t *testing.T) {
	deleted := uint(0)
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.ArtistBooking, error) {
			return &models.ArtistBooking{ID: id, ArtistID: 1, EventID: 2}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	svc := NewBookingService(bookings, &mockArtistRepo{}, &mockEventRepo{}, nil)

	err := svc.Delete(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), deleted)
}
