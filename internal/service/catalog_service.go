package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

// CatalogService serves the reference data the UI populates its selectors
// from, plus the locality and role catalogs that admit writes.
type CatalogService interface {
	ListMunicipios(ctx context.Context) ([]models.Municipio, error)
	ListGenres(ctx context.Context) ([]models.MusicGenre, error)
	ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error)
	ListEventStatuses(ctx context.Context) ([]models.EventStatus, error)
	ListTransactionStatuses(ctx context.Context) ([]models.TransactionStatus, error)

	CreateLocality(ctx context.Context, locality *models.Locality) error
	GetLocality(ctx context.Context, id uint) (*models.Locality, error)
	ListLocalities(ctx context.Context) ([]models.Locality, error)
	UpdateLocality(ctx context.Context, locality *models.Locality) error
	DeleteLocality(ctx context.Context, id uint) error

	CreateRole(ctx context.Context, role *models.Role) error
	ListRoles(ctx context.Context) ([]models.Role, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListMunicipios(ctx context.Context) ([]models.Municipio, error) {
	return s.catalog.ListMunicipios(ctx)
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.MusicGenre, error) {
	return s.catalog.ListGenres(ctx)
}

func (s *catalogService) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.catalog.ListPaymentMethods(ctx)
}

func (s *catalogService) ListEventStatuses(ctx context.Context) ([]models.EventStatus, error) {
	return s.catalog.ListEventStatuses(ctx)
}

func (s *catalogService) ListTransactionStatuses(ctx context.Context) ([]models.TransactionStatus, error) {
	return s.catalog.ListTransactionStatuses(ctx)
}

func (s *catalogService) CreateLocality(ctx context.Context, locality *models.Locality) error {
	existing, err := s.catalog.FindLocalityByName(ctx, locality.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check locality name: %w", err)
	}
	if existing != nil {
		return ErrLocalityNameTaken
	}
	return s.catalog.CreateLocality(ctx, locality)
}

func (s *catalogService) GetLocality(ctx context.Context, id uint) (*models.Locality, error) {
	locality, err := s.catalog.FindLocalityByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocalityNotFound
		}
		return nil, err
	}
	return locality, nil
}

func (s *catalogService) ListLocalities(ctx context.Context) ([]models.Locality, error) {
	return s.catalog.ListLocalities(ctx)
}

func (s *catalogService) UpdateLocality(ctx context.Context, locality *models.Locality) error {
	current, err := s.GetLocality(ctx, locality.ID)
	if err != nil {
		return err
	}

	if locality.Name != current.Name {
		existing, err := s.catalog.FindLocalityByName(ctx, locality.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check locality name: %w", err)
		}
		if existing != nil {
			return ErrLocalityNameTaken
		}
	}

	return s.catalog.UpdateLocality(ctx, locality)
}

func (s *catalogService) DeleteLocality(ctx context.Context, id uint) error {
	if _, err := s.GetLocality(ctx, id); err != nil {
		return err
	}

	count, err := s.catalog.CountTiersByLocality(ctx, id)
	if err != nil {
		return fmt.Errorf("count tiers: %w", err)
	}
	if count > 0 {
		return ErrLocalityInUse
	}

	return s.catalog.DeleteLocality(ctx, id)
}

func (s *catalogService) CreateRole(ctx context.Context, role *models.Role) error {
	existing, err := s.catalog.FindRoleByName(ctx, role.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check role name: %w", err)
	}
	if existing != nil {
		return ErrRoleNameTaken
	}
	return s.catalog.CreateRole(ctx, role)
}

func (s *catalogService) ListRoles(ctx context.Context) ([]models.Role, error) {
	return s.catalog.ListRoles(ctx)
}
