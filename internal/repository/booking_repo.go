package repository

import (
	"context"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.ArtistBooking) error
	FindByID(ctx context.Context, id uint) (*models.ArtistBooking, error)
	// FindByArtistWithEvents returns the artist's bookings with each
	// booking's event loaded, so date ranges can be compared.
	FindByArtistWithEvents(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.ArtistBooking, error)
	FindByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error)
	Delete(ctx context.Context, id uint) error
	CountByArtist(ctx context.Context, artistID uint) (int64, error)
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
	// InTx runs fn inside a database transaction.
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.ArtistBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.ArtistBooking, error) {
	var booking models.ArtistBooking
	err := r.db.WithContext(ctx).
		Preload("Artist").Preload("Event").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByArtistWithEvents(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.ArtistBooking, error) {
	var bookings []models.ArtistBooking
	err := tx.WithContext(ctx).
		Preload("Event").
		Where("id_artista = ?", artistID).
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) FindByArtist(ctx context.Context, artistID uint) ([]models.ArtistBooking, error) {
	var bookings []models.ArtistBooking
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("id_artista = ?", artistID).
		Order("id_artista_evento ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ArtistBooking{}, id).Error
}

func (r *bookingRepository) CountByArtist(ctx context.Context, artistID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ArtistBooking{}).
		Where("id_artista = ?", artistID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ArtistBooking{}).
		Where("id_evento = ?", eventID).
		Count(&count).Error
	return count, err
}
