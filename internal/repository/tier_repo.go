package repository

import (
	"context"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

type TierRepository interface {
	Create(ctx context.Context, tier *models.PricingTier) error
	FindByID(ctx context.Context, id uint) (*models.PricingTier, error)
	FindAll(ctx context.Context) ([]models.PricingTier, error)
	FindByEvent(ctx context.Context, eventID uint) ([]models.PricingTier, error)
	FindByLocalityAndEvent(ctx context.Context, localityID, eventID uint) (*models.PricingTier, error)
	Update(ctx context.Context, tier *models.PricingTier) error
	Delete(ctx context.Context, id uint) error
	CountByEvent(ctx context.Context, eventID uint) (int64, error)

	// ReserveStock is the ledger's check-and-decrement: a single conditional
	// update that only succeeds while enough tickets remain. Returns false
	// when the row was not touched (insufficient stock or unknown tier).
	ReserveStock(ctx context.Context, tierID uint, quantity int) (bool, error)
	// ReleaseStock credits quantity back, guarded so the counter never
	// exceeds capacity. Runs on tx so callers can pair it with other writes.
	ReleaseStock(ctx context.Context, tx *gorm.DB, tierID uint, quantity int) error

	GetDB() *gorm.DB
}

type tierRepository struct {
	db *gorm.DB
}

func NewTierRepository(db *gorm.DB) TierRepository {
	return &tierRepository{db: db}
}

func (r *tierRepository) GetDB() *gorm.DB { return r.db }

func (r *tierRepository) Create(ctx context.Context, tier *models.PricingTier) error {
	return r.db.WithContext(ctx).Create(tier).Error
}

func (r *tierRepository) FindByID(ctx context.Context, id uint) (*models.PricingTier, error) {
	var tier models.PricingTier
	if err := r.db.WithContext(ctx).First(&tier, id).Error; err != nil {
		return nil, err
	}
	return &tier, nil
}

func (r *tierRepository) FindAll(ctx context.Context) ([]models.PricingTier, error) {
	var tiers []models.PricingTier
	err := r.db.WithContext(ctx).
		Preload("Locality").Preload("Event").
		Order("precio ASC").
		Find(&tiers).Error
	return tiers, err
}

func (r *tierRepository) FindByEvent(ctx context.Context, eventID uint) ([]models.PricingTier, error) {
	var tiers []models.PricingTier
	err := r.db.WithContext(ctx).
		Preload("Locality").
		Where("id_evento = ?", eventID).
		Order("precio ASC").
		Find(&tiers).Error
	return tiers, err
}

func (r *tierRepository) FindByLocalityAndEvent(ctx context.Context, localityID, eventID uint) (*models.PricingTier, error) {
	var tier models.PricingTier
	err := r.db.WithContext(ctx).
		Where("id_localidad = ? AND id_evento = ?", localityID, eventID).
		First(&tier).Error
	if err != nil {
		return nil, err
	}
	return &tier, nil
}

func (r *tierRepository) Update(ctx context.Context, tier *models.PricingTier) error {
	return r.db.WithContext(ctx).Save(tier).Error
}

func (r *tierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.PricingTier{}, id).Error
}

func (r *tierRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PricingTier{}).
		Where("id_evento = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *tierRepository) ReserveStock(ctx context.Context, tierID uint, quantity int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PricingTier{}).
		Where("id_localidad_detalle = ? AND cantidad_disponible >= ?", tierID, quantity).
		UpdateColumn("cantidad_disponible", gorm.Expr("cantidad_disponible - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *tierRepository) ReleaseStock(ctx context.Context, tx *gorm.DB, tierID uint, quantity int) error {
	return tx.WithContext(ctx).
		Model(&models.PricingTier{}).
		Where("id_localidad_detalle = ? AND cantidad_disponible + ? <= cantidad_total", tierID, quantity).
		UpdateColumn("cantidad_disponible", gorm.Expr("cantidad_disponible + ?", quantity)).Error
}
