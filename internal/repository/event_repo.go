package repository

import (
	"context"
	"time"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByName(ctx context.Context, name string) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByMunicipio(ctx context.Context, municipioID uint) ([]models.Event, error)
	FindByStatus(ctx context.Context, statusID uint) ([]models.Event, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Municipio").Preload("Status").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByName(ctx context.Context, name string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Municipio").Preload("Status").
		Order("fecha_inicio DESC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) FindByMunicipio(ctx context.Context, municipioID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Municipio").Preload("Status").
		Where("id_municipio = ?", municipioID).
		Order("fecha_inicio DESC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) FindByStatus(ctx context.Context, statusID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Municipio").Preload("Status").
		Where("id_estado_evento = ?", statusID).
		Order("fecha_inicio DESC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Municipio").Preload("Status").
		Where("fecha_inicio >= ?", from).
		Order("fecha_inicio ASC").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}
