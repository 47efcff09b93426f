// internal/domain/cart/manager.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/catalog"
	"github.com/your-org/ekart-storefront/internal/domain/order"
)

var (
	// ErrAuthRequired is returned when an operation that needs a
	// credential is attempted without one.
	ErrAuthRequired = errors.New("authentication required")

	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrQuantityCapReached is returned by IncrementQuantity when the
	// line item already holds the per-product maximum.
	ErrQuantityCapReached = errors.New("quantity cap reached")
)

// Store is the remote cart store the manager synchronizes with. The
// remote copy is a best-effort replica; the manager's in-memory state
// is the source of truth for the session.
type Store interface {
	Fetch(ctx context.Context, credential string) ([]LineItem, error)
	Replace(ctx context.Context, credential string, items []LineItem) error
}

// OrderPlacer submits a finalized order to the order service.
type OrderPlacer interface {
	Place(ctx context.Context, credential string, o *order.Order) error
}

// Manager holds the authoritative cart for one storefront session. All
// mutations are serialized under a mutex; content changes schedule a
// debounced full-replace push of the cart to the remote store. Only the
// most recently scheduled push fires; earlier pending pushes are
// coalesced so a stale snapshot never overwrites a newer one.
type Manager struct {
	store  Store
	orders OrderPlacer
	cfg    config.CartConfig
	log    *logrus.Entry

	mu         sync.Mutex
	items      []LineItem
	credential string
	timer      *time.Timer
	pushSeq    uint64

	now func() time.Time
}

// NewManager creates a cart manager for a single session.
func NewManager(store Store, orders OrderPlacer, cfg config.CartConfig, log *logrus.Entry) *Manager {
	return &Manager{
		store:  store,
		orders: orders,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// AddToCart inserts the product as a new line item with quantity 1, or
// increments the existing line by 1. The per-product cap is not applied
// on this path; callers that need it enforced use IncrementQuantity.
func (m *Manager) AddToCart(product catalog.Product, credential string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == product.ID {
			m.items[i].Quantity++
			m.scheduleSyncLocked(credential)
			return
		}
	}

	m.items = append(m.items, LineItem{
		ProductID:   product.ID,
		Name:        product.Title,
		ImageURL:    product.Image,
		Category:    product.Category,
		Description: product.Description,
		UnitPrice:   decimal.NewFromFloat(product.Price),
		Quantity:    1,
	})
	m.scheduleSyncLocked(credential)
}

// IncrementQuantity increases the matching line item's quantity by 1.
// Missing products are a no-op. At the per-product cap it returns
// ErrQuantityCapReached and leaves the cart unchanged.
func (m *Manager) IncrementQuantity(productID, credential string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			if m.items[i].Quantity >= m.cfg.QuantityCap {
				return ErrQuantityCapReached
			}
			m.items[i].Quantity++
			m.scheduleSyncLocked(credential)
			return nil
		}
	}

	return nil
}

// DecrementQuantity decreases the matching line item's quantity by 1,
// removing the line entirely when it would drop below 1. Missing
// products are a no-op.
func (m *Manager) DecrementQuantity(productID, credential string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity--
			if m.items[i].Quantity <= 0 {
				m.items = append(m.items[:i], m.items[i+1:]...)
			}
			m.scheduleSyncLocked(credential)
			return
		}
	}
}

// RemoveFromCart deletes the line item unconditionally. Missing
// products are a no-op.
func (m *Manager) RemoveFromCart(productID, credential string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.scheduleSyncLocked(credential)
			return
		}
	}
}

// ClearCart empties the cart and cancels any pending push. A push of an
// empty cart would be skipped anyway, so nothing is scheduled.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
}

// Items returns a snapshot of the cart's line items in insertion order.
func (m *Manager) Items() []LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Totals computes pricing for the current cart contents.
func (m *Manager) Totals() Totals {
	return ComputeTotals(m.Items())
}

// Pull fetches the remote cart and replaces the local state with it
// wholesale; there is no merge. Without a credential it returns without
// effect. Fetch failures are logged and leave the local cart untouched;
// no error is surfaced to the caller. Pull is meant for session start,
// before mutations are accepted, so it never schedules a push.
func (m *Manager) Pull(ctx context.Context, credential string) {
	if credential == "" {
		return
	}

	fetched, err := m.store.Fetch(ctx, credential)
	if err != nil {
		m.log.WithError(err).Warn("failed to fetch cart from backend")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]LineItem, len(fetched))
	copy(m.items, fetched)
	m.credential = credential
}

// Checkout builds an order snapshot from the current cart, submits it,
// and clears the cart on success. Without a credential it fails locally
// with ErrAuthRequired and the order service is never contacted. On
// submission failure the cart is left intact.
func (m *Manager) Checkout(ctx context.Context, credential string) (*order.Order, error) {
	if credential == "" {
		return nil, ErrAuthRequired
	}

	m.mu.Lock()
	if len(m.items) == 0 {
		m.mu.Unlock()
		return nil, ErrEmptyCart
	}
	items := m.snapshotLocked()
	m.mu.Unlock()

	totals := ComputeTotals(items)
	placedAt := m.now().UTC()

	o := &order.Order{
		Items:        make([]order.LineItem, len(items)),
		TotalAmount:  totals.Total,
		ShippingFee:  totals.ShippingFee,
		PlacedAt:     placedAt,
		DeliveryDate: placedAt.AddDate(0, 0, m.cfg.DeliveryLeadDays),
	}
	for i, item := range items {
		o.Items[i] = order.LineItem{
			ProductID:       item.ProductID,
			Name:            item.Name,
			ImageURL:        item.ImageURL,
			Category:        item.Category,
			Description:     item.Description,
			UnitPrice:       item.UnitPrice,
			DiscountedPrice: DiscountedUnitPrice(item.UnitPrice).Round(2),
			Quantity:        item.Quantity,
		}
	}

	if err := m.orders.Place(ctx, credential, o); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	m.mu.Lock()
	m.clearLocked()
	m.mu.Unlock()

	return o, nil
}

// Stop cancels any scheduled push. Used when the session is dropped.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushSeq++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// scheduleSyncLocked restarts the debounce window after a content
// mutation. The sequence number invalidates any earlier scheduled push
// so only the latest one fires, carrying the full state at fire time.
func (m *Manager) scheduleSyncLocked(credential string) {
	m.credential = credential
	m.pushSeq++
	seq := m.pushSeq

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.cfg.SyncDebounce, func() {
		m.push(seq)
	})
}

// push replays the full cart to the remote store. Skipped when the
// schedule was superseded, when no credential is held, or when the cart
// is empty. Failures are logged and never retried; the local cart is
// not rolled back.
func (m *Manager) push(seq uint64) {
	m.mu.Lock()
	if seq != m.pushSeq {
		m.mu.Unlock()
		return
	}
	credential := m.credential
	items := m.snapshotLocked()
	m.mu.Unlock()

	if credential == "" || len(items) == 0 {
		return
	}

	if err := m.store.Replace(context.Background(), credential, items); err != nil {
		m.log.WithError(err).Warn("cart sync failed")
	}
}

func (m *Manager) clearLocked() {
	m.items = nil
	m.pushSeq++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) snapshotLocked() []LineItem {
	items := make([]LineItem, len(m.items))
	copy(items, m.items)
	return items
}
