package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

// StockCache is the slice of the redis cache the ledger needs. A nil cache
// disables both the availability mirror and the release-once guard.
type StockCache interface {
	SetAvailable(ctx context.Context, tierID uint, available int) error
	GetAvailable(ctx context.Context, tierID uint) (int, bool, error)
	MarkReleased(ctx context.Context, token string) (bool, error)
	UnmarkReleased(ctx context.Context, token string) error
}

// Reservation is the receipt for a successful TryReserve. Its token makes a
// later Release idempotent.
type Reservation struct {
	Token    string
	TierID   uint
	Quantity int
}

// AvailabilityLedger owns the remaining-ticket counter of every pricing
// tier. All debits go through a single conditional update, so the counter
// can never go negative no matter how many purchases race.
type AvailabilityLedger struct {
	tiers repository.TierRepository
	cache StockCache
}

func NewAvailabilityLedger(tiers repository.TierRepository, cache StockCache) *AvailabilityLedger {
	return &AvailabilityLedger{tiers: tiers, cache: cache}
}

// TryReserve atomically debits quantity tickets from the tier. On success it
// returns a reservation receipt; when stock is short it returns an
// *InsufficientStockError carrying the counts at the time of the attempt.
func (l *AvailabilityLedger) TryReserve(ctx context.Context, tierID uint, quantity int) (*Reservation, error) {
	ok, err := l.tiers.ReserveStock(ctx, tierID, quantity)
	if err != nil {
		return nil, fmt.Errorf("reserve stock: %w", err)
	}
	if !ok {
		tier, err := l.tiers.FindByID(ctx, tierID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTierNotFound
			}
			return nil, fmt.Errorf("find tier %d: %w", tierID, err)
		}
		return nil, &InsufficientStockError{TierID: tierID, Requested: quantity, Available: tier.Available}
	}

	l.Refresh(ctx, tierID)
	return &Reservation{Token: uuid.NewString(), TierID: tierID, Quantity: quantity}, nil
}

// Release credits a reservation back. Each token is honored at most once;
// replaying a release is a no-op. Without a cache the guard is skipped and
// the capacity-bounded credit is the only protection.
func (l *AvailabilityLedger) Release(ctx context.Context, res *Reservation) error {
	marked := false
	if l.cache != nil {
		first, err := l.cache.MarkReleased(ctx, res.Token)
		if err != nil {
			log.Printf("[Ledger] release marker for %s unavailable: %v", res.Token, err)
		} else if !first {
			return nil
		} else {
			marked = true
		}
	}

	if err := l.tiers.ReleaseStock(ctx, l.tiers.GetDB(), res.TierID, res.Quantity); err != nil {
		// Give the token back so a retry is not a no-op.
		if marked {
			if unErr := l.cache.UnmarkReleased(ctx, res.Token); unErr != nil {
				log.Printf("[Ledger] release marker rollback for %s failed: %v", res.Token, unErr)
			}
		}
		return fmt.Errorf("release stock: %w", err)
	}

	l.Refresh(ctx, res.TierID)
	return nil
}

// Peek reports current availability, serving from the cache when it can and
// falling back to the database.
func (l *AvailabilityLedger) Peek(ctx context.Context, tierID uint) (int, error) {
	if l.cache != nil {
		n, ok, err := l.cache.GetAvailable(ctx, tierID)
		if err != nil {
			log.Printf("[Ledger] availability cache read failed: %v", err)
		} else if ok {
			return n, nil
		}
	}

	tier, err := l.tiers.FindByID(ctx, tierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTierNotFound
		}
		return 0, fmt.Errorf("find tier %d: %w", tierID, err)
	}

	if l.cache != nil {
		if err := l.cache.SetAvailable(ctx, tierID, tier.Available); err != nil {
			log.Printf("[Ledger] availability cache write failed: %v", err)
		}
	}
	return tier.Available, nil
}

// Refresh re-mirrors a tier's availability into the cache after the counter
// changed outside the cache's view. Best effort.
func (l *AvailabilityLedger) Refresh(ctx context.Context, tierID uint) {
	if l.cache == nil {
		return
	}
	tier, err := l.tiers.FindByID(ctx, tierID)
	if err != nil {
		log.Printf("[Ledger] refresh read for tier %d failed: %v", tierID, err)
		return
	}
	if err := l.cache.SetAvailable(ctx, tierID, tier.Available); err != nil {
		log.Printf("[Ledger] refresh write for tier %d failed: %v", tierID, err)
	}
}
