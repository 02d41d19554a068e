package repository

import (
	"context"
	"errors"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository serves the reference tables the business flows validate
// against: payment methods, transaction/event statuses, genres, geography,
// roles and localities.
type CatalogRepository interface {
	MunicipioExists(ctx context.Context, id uint) (bool, error)
	EventStatusExists(ctx context.Context, id uint) (bool, error)
	PaymentMethodExists(ctx context.Context, id uint) (bool, error)
	GenreExists(ctx context.Context, id uint) (bool, error)
	RoleExists(ctx context.Context, id uint) (bool, error)
	TransactionStatusExists(ctx context.Context, id uint) (bool, error)

	FindTransactionStatusByName(ctx context.Context, name string) (*models.TransactionStatus, error)

	ListMunicipios(ctx context.Context) ([]models.Municipio, error)
	ListGenres(ctx context.Context) ([]models.MusicGenre, error)
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	ListEventStatuses(ctx context.Context) ([]models.EventStatus, error)
	ListTransactionStatuses(ctx context.Context) ([]models.TransactionStatus, error)

	CreateLocality(ctx context.Context, locality *models.Locality) error
	FindLocalityByID(ctx context.Context, id uint) (*models.Locality, error)
	FindLocalityByName(ctx context.Context, name string) (*models.Locality, error)
	ListLocalities(ctx context.Context) ([]models.Locality, error)
	UpdateLocality(ctx context.Context, locality *models.Locality) error
	DeleteLocality(ctx context.Context, id uint) error
	CountTiersByLocality(ctx context.Context, localityID uint) (int64, error)

	CreateRole(ctx context.Context, role *models.Role) error
	FindRoleByName(ctx context.Context, name string) (*models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func existsResult(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

func (r *catalogRepository) MunicipioExists(ctx context.Context, id uint) (bool, error) {
	var m models.Municipio
	return existsResult(r.db.WithContext(ctx).First(&m, id).Error)
}

func (r *catalogRepository) EventStatusExists(ctx context.Context, id uint) (bool, error) {
	var s models.EventStatus
	return existsResult(r.db.WithContext(ctx).First(&s, id).Error)
}

func (r *catalogRepository) PaymentMethodExists(ctx context.Context, id uint) (bool, error) {
	var m models.PaymentMethod
	return existsResult(r.db.WithContext(ctx).First(&m, id).Error)
}

func (r *catalogRepository) GenreExists(ctx context.Context, id uint) (bool, error) {
	var g models.MusicGenre
	return existsResult(r.db.WithContext(ctx).First(&g, id).Error)
}

func (r *catalogRepository) RoleExists(ctx context.Context, id uint) (bool, error) {
	var ro models.Role
	return existsResult(r.db.WithContext(ctx).First(&ro, id).Error)
}

func (r *catalogRepository) TransactionStatusExists(ctx context.Context, id uint) (bool, error) {
	var st models.TransactionStatus
	return existsResult(r.db.WithContext(ctx).First(&st, id).Error)
}

func (r *catalogRepository) FindTransactionStatusByName(ctx context.Context, name string) (*models.TransactionStatus, error) {
	var s models.TransactionStatus
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *catalogRepository) ListMunicipios(ctx context.Context) ([]models.Municipio, error) {
	var out []models.Municipio
	err := r.db.WithContext(ctx).Preload("Departamento").Order("nombre ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) ListGenres(ctx context.Context) ([]models.MusicGenre, error) {
	var out []models.MusicGenre
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) ListEventStatuses(ctx context.Context) ([]models.EventStatus, error) {
	var out []models.EventStatus
	err := r.db.WithContext(ctx).Order("id_estado_evento ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) ListTransactionStatuses(ctx context.Context) ([]models.TransactionStatus, error) {
	var out []models.TransactionStatus
	err := r.db.WithContext(ctx).Order("id_estado_transaccion ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) CreateLocality(ctx context.Context, locality *models.Locality) error {
	return r.db.WithContext(ctx).Create(locality).Error
}

func (r *catalogRepository) FindLocalityByID(ctx context.Context, id uint) (*models.Locality, error) {
	var l models.Locality
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *catalogRepository) FindLocalityByName(ctx context.Context, name string) (*models.Locality, error) {
	var l models.Locality
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *catalogRepository) ListLocalities(ctx context.Context) ([]models.Locality, error) {
	var out []models.Locality
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&out).Error
	return out, err
}

func (r *catalogRepository) UpdateLocality(ctx context.Context, locality *models.Locality) error {
	return r.db.WithContext(ctx).Save(locality).Error
}

func (r *catalogRepository) DeleteLocality(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Locality{}, id).Error
}

func (r *catalogRepository) CountTiersByLocality(ctx context.Context, localityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PricingTier{}).
		Where("id_localidad = ?", localityID).
		Count(&count).Error
	return count, err
}

func (r *catalogRepository) CreateRole(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *catalogRepository) FindRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var ro models.Role
	if err := r.db.WithContext(ctx).Where("nombre = ?", name).First(&ro).Error; err != nil {
		return nil, err
	}
	return &ro, nil
}

func (r *catalogRepository) ListRoles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	err := r.db.WithContext(ctx).Order("id_rol ASC").Find(&out).Error
	return out, err
}
