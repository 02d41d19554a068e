package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
)

// --- In-memory TierRepository ---

// fakeTierStore keeps tiers in a mutex-guarded map and implements the
// conditional update the same way the SQL does, so concurrent reservations
// exercise the real check-and-decrement contract.
type fakeTierStore struct {
	mu    sync.Mutex
	tiers map[uint]*models.PricingTier
}

func newFakeTierStore(tiers ...*models.PricingTier) *fakeTierStore {
	s := &fakeTierStore{tiers: make(map[uint]*models.PricingTier)}
	for _, t := range tiers {
		s.tiers[t.ID] = t
	}
	return s
}

func (s *fakeTierStore) Create(ctx context.Context, tier *models.PricingTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiers[tier.ID] = tier
	return nil
}

func (s *fakeTierStore) FindByID(ctx context.Context, id uint) (*models.PricingTier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tier, ok := s.tiers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *tier
	return &cp, nil
}

func (s *fakeTierStore) FindAll(ctx context.Context) ([]models.PricingTier, error) {
	return nil, nil
}

func (s *fakeTierStore) FindByEvent(ctx context.Context, eventID uint) ([]models.PricingTier, error) {
	return nil, nil
}

func (s *fakeTierStore) FindByLocalityAndEvent(ctx context.Context, localityID, eventID uint) (*models.PricingTier, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTierStore) Update(ctx context.Context, tier *models.PricingTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tiers[tier.ID] = tier
	return nil
}

func (s *fakeTierStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tiers, id)
	return nil
}

func (s *fakeTierStore) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	return 0, nil
}

func (s *fakeTierStore) ReserveStock(ctx context.Context, tierID uint, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tier, ok := s.tiers[tierID]
	if !ok || tier.Available < quantity {
		return false, nil
	}
	tier.Available -= quantity
	return true, nil
}

func (s *fakeTierStore) ReleaseStock(ctx context.Context, tx *gorm.DB, tierID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tier, ok := s.tiers[tierID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if tier.Available+quantity <= tier.Capacity {
		tier.Available += quantity
	}
	return nil
}

func (s *fakeTierStore) GetDB() *gorm.DB { return nil }

func (s *fakeTierStore) available(id uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tiers[id].Available
}

// --- In-memory StockCache ---

type fakeStockCache struct {
	mu        sync.Mutex
	available map[uint]int
	released  map[string]bool
}

func newFakeStockCache() *fakeStockCache {
	return &fakeStockCache{available: make(map[uint]int), released: make(map[string]bool)}
}

func (c *fakeStockCache) SetAvailable(ctx context.Context, tierID uint, available int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.available[tierID] = available
	return nil
}

func (c *fakeStockCache) GetAvailable(ctx context.Context, tierID uint) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.available[tierID]
	return n, ok, nil
}

func (c *fakeStockCache) MarkReleased(ctx context.Context, token string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released[token] {
		return false, nil
	}
	c.released[token] = true
	return true, nil
}

func (c *fakeStockCache) UnmarkReleased(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.released, token)
	return nil
}

// --- Tests ---

func TestTryReserve_Success(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 10})
	ledger := NewAvailabilityLedger(store, nil)

	res, err := ledger.TryReserve(context.Background(), 1, 4)

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, uint(1), res.TierID)
	assert.Equal(t, 4, res.Quantity)
	assert.Equal(t, 6, store.available(1))
}

func TestTryReserve_InsufficientStock(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 5})
	ledger := NewAvailabilityLedger(store, nil)

	res, err := ledger.TryReserve(context.Background(), 1, 6)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var stockErr *InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 5, store.available(1))
}

func TestTryReserve_UnknownTier(t *testing.T) {
	ledger := NewAvailabilityLedger(newFakeTierStore(), nil)

	res, err := ledger.TryReserve(context.Background(), 99, 1)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrTierNotFound)
}

// Two buyers racing for the last tickets: the counter never goes negative
// and exactly floor(available/qty) requests win.
func TestTryReserve_ConcurrentNoOversell(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 100, Available: 100})
	ledger := NewAvailabilityLedger(store, nil)

	const workers = 50
	const perRequest = 3 // 50*3 = 150 requested, only 33 can win

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.TryReserve(context.Background(), 1, perRequest)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientStock)
		}
	}

	assert.Equal(t, 33, wins)
	assert.Equal(t, 100-33*perRequest, store.available(1))
	assert.GreaterOrEqual(t, store.available(1), 0)
}

// Two requests of 3 against 5 available: one wins, one is rejected, and one
// ticket can remain unsold.
func TestTryReserve_PartialFulfillment(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 5, Available: 5})
	ledger := NewAvailabilityLedger(store, nil)
	ctx := context.Background()

	_, err1 := ledger.TryReserve(ctx, 1, 3)
	_, err2 := ledger.TryReserve(ctx, 1, 3)

	assert.NoError(t, err1)
	assert.ErrorIs(t, err2, ErrInsufficientStock)
	assert.Equal(t, 2, store.available(1))
}

func TestRelease_RestoresStock(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 10})
	ledger := NewAvailabilityLedger(store, newFakeStockCache())
	ctx := context.Background()

	res, err := ledger.TryReserve(ctx, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, 6, store.available(1))

	assert.NoError(t, ledger.Release(ctx, res))
	assert.Equal(t, 10, store.available(1))
}

func TestRelease_Idempotent(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 10})
	ledger := NewAvailabilityLedger(store, newFakeStockCache())
	ctx := context.Background()

	res, err := ledger.TryReserve(ctx, 1, 4)
	assert.NoError(t, err)

	assert.NoError(t, ledger.Release(ctx, res))
	assert.NoError(t, ledger.Release(ctx, res))
	assert.NoError(t, ledger.Release(ctx, res))

	assert.Equal(t, 10, store.available(1))
}

// brokenTierStore rejects the first n ReleaseStock calls.
type brokenTierStore struct {
	*fakeTierStore
	failures int
}

func (s *brokenTierStore) ReleaseStock(ctx context.Context, tx *gorm.DB, tierID uint, quantity int) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("connection reset")
	}
	return s.fakeTierStore.ReleaseStock(ctx, tx, tierID, quantity)
}

// A failed credit must not consume the token: the marker is rolled back and
// the next attempt still goes through.
func TestRelease_RetryAfterFailedCredit(t *testing.T) {
	store := &brokenTierStore{
		fakeTierStore: newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 6}),
		failures:      1,
	}
	ledger := NewAvailabilityLedger(store, newFakeStockCache())
	ctx := context.Background()

	res := &Reservation{Token: "tok-1", TierID: 1, Quantity: 4}

	assert.Error(t, ledger.Release(ctx, res))
	assert.Equal(t, 6, store.available(1))

	assert.NoError(t, ledger.Release(ctx, res))
	assert.Equal(t, 10, store.available(1))
}

func TestPeek_FallsBackToDatabase(t *testing.T) {
	store := newFakeTierStore(&models.PricingTier{ID: 1, Capacity: 10, Available: 7})
	cache := newFakeStockCache()
	ledger := NewAvailabilityLedger(store, cache)
	ctx := context.Background()

	available, err := ledger.Peek(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 7, available)

	// Second read is served from the now-populated cache.
	n, ok, _ := cache.GetAvailable(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, 7, n)
}

func TestPeek_UnknownTier(t *testing.T) {
	ledger := NewAvailabilityLedger(newFakeTierStore(), nil)

	_, err := ledger.Peek(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTierNotFound)
}
