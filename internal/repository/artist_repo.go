package repository

import (
	"context"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindByName(ctx context.Context, name string) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint) error
	// FindByIDForUpdate locks the artist row within tx, serializing
	// concurrent booking attempts for the same artist.
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error)
	GetDB() *gorm.DB
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetDB() *gorm.DB { return r.db }

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Genre").Preload("HomeTown").
		First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByName(ctx context.Context, name string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Preload("Genre").Preload("HomeTown").
		Order("nombre ASC").
		Find(&artists).Error
	return artists, err
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	return r.db.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Artist{}, id).Error
}

func (r *artistRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}
