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

// MaxTicketsPerPurchase caps a single checkout.
const MaxTicketsPerPurchase = 10

const initialPurchaseStatus = "pendiente"

// PurchaseInput is what a checkout needs from the caller. Total value and
// status are computed server side.
type PurchaseInput struct {
	UserID          string
	TierID          uint
	Quantity        int
	PaymentMethodID uint
}

type PurchaseService interface {
	Create(ctx context.Context, in PurchaseInput) (*models.Purchase, error)
	GetByID(ctx context.Context, id uint) (*models.Purchase, error)
	List(ctx context.Context) ([]models.Purchase, error)
	ListByUser(ctx context.Context, userID string) ([]models.Purchase, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.Purchase, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Purchase, error)
	UpdateStatus(ctx context.Context, id, statusID uint) (*models.Purchase, error)
	Delete(ctx context.Context, id uint) error
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	tiers     repository.TierRepository
	users     repository.UserRepository
	catalog   repository.CatalogRepository
	ledger    *AvailabilityLedger
	publisher Publisher
}

func NewPurchaseService(
	purchases repository.PurchaseRepository,
	tiers repository.TierRepository,
	users repository.UserRepository,
	catalog repository.CatalogRepository,
	ledger *AvailabilityLedger,
	publisher Publisher,
) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		tiers:     tiers,
		users:     users,
		catalog:   catalog,
		ledger:    ledger,
		publisher: publisher,
	}
}

// Create runs the checkout: validate, reserve stock through the ledger,
// persist the purchase, and release the reservation if persisting fails.
// Validation happens before the ledger is touched so a rejected request
// never moves the counter.
func (s *purchaseService) Create(ctx context.Context, in PurchaseInput) (*models.Purchase, error) {
	if in.Quantity < 1 || in.Quantity > MaxTicketsPerPurchase {
		return nil, ErrQuantityOutOfRange
	}

	tier, err := s.tiers.FindByID(ctx, in.TierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, fmt.Errorf("find tier: %w", err)
	}

	ok, err := s.catalog.PaymentMethodExists(ctx, in.PaymentMethodID)
	if err != nil {
		return nil, fmt.Errorf("check payment method: %w", err)
	}
	if !ok {
		return nil, ErrPaymentMethodNotFound
	}

	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	status, err := s.catalog.FindTransactionStatusByName(ctx, initialPurchaseStatus)
	if err != nil {
		return nil, fmt.Errorf("find initial status: %w", err)
	}

	reservation, err := s.ledger.TryReserve(ctx, in.TierID, in.Quantity)
	if err != nil {
		return nil, err
	}

	purchase := &models.Purchase{
		UserID:          in.UserID,
		TierID:          in.TierID,
		Quantity:        in.Quantity,
		TotalValue:      int64(in.Quantity) * tier.Price,
		StatusID:        status.ID,
		PaymentMethodID: in.PaymentMethodID,
		Date:            today(),
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		// The request context may already be canceled or timed out here;
		// the credit must still land.
		relCtx := context.WithoutCancel(ctx)
		if relErr := s.ledger.Release(relCtx, reservation); relErr != nil {
			log.Printf("[Purchase] compensating release for tier %d failed: %v", in.TierID, relErr)
		}
		return nil, fmt.Errorf("persist purchase: %w", err)
	}

	s.notify(RoutingKeyPurchaseCreated, purchase)
	return purchase, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uint) (*models.Purchase, error) {
	purchase, err := s.purchases.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	return s.purchases.FindAll(ctx)
}

func (s *purchaseService) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.purchases.FindByUser(ctx, userID)
}

func (s *purchaseService) ListByEvent(ctx context.Context, eventID uint) ([]models.Purchase, error) {
	return s.purchases.FindByEvent(ctx, eventID)
}

func (s *purchaseService) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Purchase, error) {
	return s.purchases.FindByDateRange(ctx, from, to)
}

// UpdateStatus is the only mutation a stored purchase admits. Quantity and
// value never change after checkout.
func (s *purchaseService) UpdateStatus(ctx context.Context, id, statusID uint) (*models.Purchase, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.catalog.TransactionStatusExists(ctx, statusID)
	if err != nil {
		return nil, fmt.Errorf("check status: %w", err)
	}
	if !ok {
		return nil, ErrTxStatusNotFound
	}

	if err := s.purchases.UpdateStatus(ctx, id, statusID); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	return s.GetByID(ctx, id)
}

// Delete cancels a purchase and returns its tickets to the tier. The row
// delete and the stock credit commit together.
func (s *purchaseService) Delete(ctx context.Context, id uint) error {
	purchase, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.purchases.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.purchases.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.tiers.ReleaseStock(ctx, tx, purchase.TierID, purchase.Quantity)
	})
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}

	s.ledger.Refresh(ctx, purchase.TierID)
	return nil
}

func (s *purchaseService) notify(key string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(key, payload); err != nil {
		log.Printf("[Purchase] publish %s failed: %v", key, err)
	}
}

// today truncates to the calendar date, matching the date-only column.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
