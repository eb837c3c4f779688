package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"BakeShop/internal/catalog"
)

// ViewItem is a line item enriched with live catalog data. A line
// whose product has left the catalog is flagged unavailable and
// excluded from the total; the user can still see and remove it.
type ViewItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Quantity    int             `json:"quantity"`
	ItemTotal   decimal.Decimal `json:"itemTotal"`
	Unavailable bool            `json:"unavailable,omitempty"`
}

type View struct {
	Items       []ViewItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Service owns all cart mutations. Every mutation is a read-modify-
// write against the slot, serialized per user so concurrent adds for
// the same product merge instead of overwriting each other.
type Service struct {
	slot    Slot
	catalog *catalog.Store
	log     *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(slot Slot, cat *catalog.Store, log *zap.Logger) *Service {
	return &Service{
		slot:    slot,
		catalog: cat,
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Get returns the user's cart with prices derived from the live
// catalog. A user with no stored items gets an empty cart, not an
// error.
func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	if userID == "" {
		return View{}, ErrUnauthenticated
	}

	items, _, err := s.slot.Load(ctx, userID)
	if err != nil {
		return View{}, fmt.Errorf("load cart: %w", err)
	}

	view := View{Items: make([]ViewItem, 0, len(items))}
	for _, it := range items {
		vi := ViewItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}

		p, ok := s.catalog.Get(ctx, it.ProductID)
		if !ok {
			s.log.Warn("cart line references missing product",
				zap.String("user_id", userID), zap.String("product_id", it.ProductID))
			vi.Name = "Product unavailable"
			vi.Unavailable = true
			view.Items = append(view.Items, vi)
			continue
		}

		vi.Name = p.Name
		vi.Price = p.Price
		vi.ImageURL = p.ImageURL
		vi.ItemTotal = p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		view.TotalAmount = view.TotalAmount.Add(vi.ItemTotal)
		view.Items = append(view.Items, vi)
	}

	return view, nil
}

// AddItem puts quantity units of a product into the cart, merging
// into an existing line for the same product if one exists.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if quantity < 1 {
		return ErrBadQuantity
	}
	if _, ok := s.catalog.Get(ctx, productID); !ok {
		return ErrProductNotFound
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	items, _, err := s.slot.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			ID:        "li_" + uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	if err := s.slot.Save(ctx, userID, items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// UpdateItem sets a line's quantity. A quantity of zero or less means
// the line is no longer wanted and is removed.
func (s *Service) UpdateItem(ctx context.Context, userID, lineID string, quantity int) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, lineID)
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	items, _, err := s.slot.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	found := false
	for i := range items {
		if items[i].ID == lineID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return ErrItemNotFound
	}

	if err := s.slot.Save(ctx, userID, items); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// RemoveItem deletes a line. Removing an absent line is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID, lineID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	items, ok, err := s.slot.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return nil
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != lineID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := s.slot.Save(ctx, userID, kept); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear drops the user's whole cart. Idempotent.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	if err := s.slot.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Raw returns the stored line items without catalog enrichment.
// Checkout uses it to snapshot the cart.
func (s *Service) Raw(ctx context.Context, userID string) ([]LineItem, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	items, _, err := s.slot.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}
