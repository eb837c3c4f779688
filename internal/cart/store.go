// Package cart implements the per-user working set of intended
// purchases. Line items at rest hold only a product reference and a
// quantity; prices are derived from the live catalog on every read,
// so an open cart always reflects current list prices. Checkout is
// where prices freeze, in the order package.
package cart

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("no user identity")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrBadQuantity     = errors.New("quantity must be at least 1")
)

// LineItem is a cart entry as persisted. At most one line exists per
// product; adding the same product again merges into it.
type LineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Slot is the durable key-value slot holding a user's line items.
// Semantics are whole-slot get/set/delete; the service constructs the
// new collection in memory and writes it back.
type Slot interface {
	Load(ctx context.Context, userID string) ([]LineItem, bool, error)
	Save(ctx context.Context, userID string, items []LineItem) error
	Delete(ctx context.Context, userID string) error
}
