package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"BakeShop/internal/cart"
	"BakeShop/internal/catalog"
)

var (
	taxRate     = decimal.RequireFromString("0.08")
	shippingFee = decimal.Zero // free shipping
)

const deliveryLeadTime = 48 * time.Hour

type Service struct {
	store   Store
	cart    *cart.Service
	catalog *catalog.Store
	log     *zap.Logger
}

func NewService(store Store, cartSvc *cart.Service, cat *catalog.Store, log *zap.Logger) *Service {
	return &Service{store: store, cart: cartSvc, catalog: cat, log: log}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// Place finalizes the user's cart into an order. Prices are resolved
// against the live catalog one last time and frozen into snapshots; a
// cart line whose product no longer resolves aborts the whole order
// rather than pricing it at zero. The order is persisted before the
// cart is cleared, so a failure in between leaves a recorded order
// with a stale cart (retryable) instead of a lost order.
func (s *Service) Place(ctx context.Context, userID string, addr ShippingAddress) (Order, error) {
	if userID == "" {
		return Order{}, ErrUnauthenticated
	}

	lines, err := s.cart.Raw(ctx, userID)
	if err != nil {
		return Order{}, err
	}
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]LineSnapshot, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		p, ok := s.catalog.Get(ctx, line.ProductID)
		if !ok {
			return Order{}, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}

		itemTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, LineSnapshot{
			ProductID: line.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
			ItemTotal: itemTotal,
		})
		subtotal = subtotal.Add(itemTotal)
	}

	tax := subtotal.Mul(taxRate).Round(2)
	now := time.Now().UTC()

	o := Order{
		ID:                newOrderID(),
		UserID:            userID,
		Items:             items,
		Subtotal:          subtotal,
		Tax:               tax,
		ShippingFee:       shippingFee,
		Total:             subtotal.Add(tax).Add(shippingFee),
		Status:            StatusProcessing,
		ShippingAddress:   addr,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}

	if err := s.store.Append(ctx, o); err != nil {
		return Order{}, fmt.Errorf("persist order: %w", err)
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		// The order is durable at this point. Surface the failure but
		// hand the recorded order back so the caller can retry the
		// clear instead of re-placing.
		s.log.Warn("cart clear after checkout failed",
			zap.String("order_id", o.ID), zap.Error(err))
		return o, fmt.Errorf("%w: %v", ErrCartClearFailed, err)
	}

	return o, nil
}

// ListForUser returns the user's orders, newest first. No orders is
// an empty list.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	orders, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one of the user's orders. An order belonging to another
// user reads as not found.
func (s *Service) Get(ctx context.Context, userID, orderID string) (Order, bool, error) {
	if userID == "" {
		return Order{}, false, ErrUnauthenticated
	}

	o, ok, err := s.store.Get(ctx, orderID)
	if err != nil {
		return Order{}, false, fmt.Errorf("get order: %w", err)
	}
	if !ok || o.UserID != userID {
		return Order{}, false, nil
	}
	return o, true, nil
}

// UpdateStatus advances an order along its life cycle. Transitions
// out of a terminal status are rejected.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, next Status) error {
	if !next.Valid() {
		return ErrBadStatus
	}

	o, ok, err := s.store.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if !ok {
		return ErrOrderNotFound
	}

	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}

	if err := s.store.SetStatus(ctx, orderID, next); err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	return nil
}
