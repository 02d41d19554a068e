package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

type TierService interface {
	Create(ctx context.Context, tier *models.PricingTier) error
	GetByID(ctx context.Context, id uint) (*models.PricingTier, error)
	List(ctx context.Context) ([]models.PricingTier, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.PricingTier, error)
	Update(ctx context.Context, id uint, price int64, capacity int) (*models.PricingTier, error)
	Delete(ctx context.Context, id uint) error
}

type tierService struct {
	tiers     repository.TierRepository
	events    repository.EventRepository
	purchases repository.PurchaseRepository
	catalog   repository.CatalogRepository
	ledger    *AvailabilityLedger
}

func NewTierService(
	tiers repository.TierRepository,
	events repository.EventRepository,
	purchases repository.PurchaseRepository,
	catalog repository.CatalogRepository,
	ledger *AvailabilityLedger,
) TierService {
	return &tierService{tiers: tiers, events: events, purchases: purchases, catalog: catalog, ledger: ledger}
}

// Create opens a pricing tier with its full capacity available.
func (s *tierService) Create(ctx context.Context, tier *models.PricingTier) error {
	if _, err := s.catalog.FindLocalityByID(ctx, tier.LocalityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocalityNotFound
		}
		return fmt.Errorf("find locality: %w", err)
	}

	if _, err := s.events.FindByID(ctx, tier.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("find event: %w", err)
	}

	existing, err := s.tiers.FindByLocalityAndEvent(ctx, tier.LocalityID, tier.EventID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check tier: %w", err)
	}
	if existing != nil {
		return ErrTierDuplicate
	}

	tier.Available = tier.Capacity
	if err := s.tiers.Create(ctx, tier); err != nil {
		return err
	}

	s.ledger.Refresh(ctx, tier.ID)
	return nil
}

func (s *tierService) GetByID(ctx context.Context, id uint) (*models.PricingTier, error) {
	tier, err := s.tiers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}
	return tier, nil
}

func (s *tierService) List(ctx context.Context) ([]models.PricingTier, error) {
	return s.tiers.FindAll(ctx)
}

func (s *tierService) ListByEvent(ctx context.Context, eventID uint) ([]models.PricingTier, error) {
	return s.tiers.FindByEvent(ctx, eventID)
}

// Update changes price and capacity. A capacity change moves the available
// counter by the same delta; shrinking below the sold count is refused so
// the counter never goes negative.
func (s *tierService) Update(ctx context.Context, id uint, price int64, capacity int) (*models.PricingTier, error) {
	tier, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sold := tier.Capacity - tier.Available
	if capacity < sold {
		return nil, ErrTierCapacityLow
	}

	tier.Price = price
	tier.Available += capacity - tier.Capacity
	tier.Capacity = capacity

	if err := s.tiers.Update(ctx, tier); err != nil {
		return nil, err
	}

	s.ledger.Refresh(ctx, tier.ID)
	return tier, nil
}

func (s *tierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.purchases.CountByTier(ctx, id)
	if err != nil {
		return fmt.Errorf("count purchases: %w", err)
	}
	if count > 0 {
		return ErrTierHasPurchases
	}

	return s.tiers.Delete(ctx, id)
}
