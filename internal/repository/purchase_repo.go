package repository

import (
	"context"
	"time"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	FindByID(ctx context.Context, id uint) (*models.Purchase, error)
	FindAll(ctx context.Context) ([]models.Purchase, error)
	FindByUser(ctx context.Context, userID string) ([]models.Purchase, error)
	FindByEvent(ctx context.Context, eventID uint) ([]models.Purchase, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Purchase, error)
	UpdateStatus(ctx context.Context, id uint, statusID uint) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByTier(ctx context.Context, tierID uint) (int64, error)
	GetDB() *gorm.DB
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) GetDB() *gorm.DB { return r.db }

func (r *purchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Tier").Preload("Status").Preload("PaymentMethod").
		First(&purchase, id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindAll(ctx context.Context) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Tier").Preload("Status").Preload("PaymentMethod").
		Order("fecha_compra DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) FindByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Preload("Tier").Preload("Status").Preload("PaymentMethod").
		Where("id_usuario = ?", userID).
		Order("fecha_compra DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Tier").Preload("Status").Preload("PaymentMethod").
		Joins("JOIN localidad_detalle ld ON ld.id_localidad_detalle = compras.id_localidad_detalle").
		Where("ld.id_evento = ?", eventID).
		Order("compras.fecha_compra DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Tier").Preload("Status").Preload("PaymentMethod").
		Where("fecha_compra BETWEEN ? AND ?", from, to).
		Order("fecha_compra DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) UpdateStatus(ctx context.Context, id uint, statusID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("id_compra = ?", id).
		Update("id_estado", statusID).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Purchase{}, id).Error
}

func (r *purchaseRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("id_usuario = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *purchaseRepository) CountByTier(ctx context.Context, tierID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("id_localidad_detalle = ?", tierID).
		Count(&count).Error
	return count, err
}
