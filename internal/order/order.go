// Package order implements the append-only log of finalized
// purchases. An order freezes product names and prices at checkout;
// later catalog changes never touch a recorded order.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnauthenticated    = errors.New("no user identity")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrProductUnavailable = errors.New("product no longer available")
	ErrOrderNotFound      = errors.New("order not found")
	ErrBadStatus          = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("invalid status transition")

	// ErrCartClearFailed wraps a storage failure that happened after
	// the order was durably recorded. The order stands; clearing the
	// cart is safe to retry.
	ErrCartClearFailed = errors.New("cart clear failed")
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the forward-only life cycle:
// processing -> shipped -> delivered, with cancellation possible from
// any non-terminal state. Delivered and cancelled are terminal.
func (s Status) CanTransitionTo(to Status) bool {
	switch s {
	case StatusProcessing:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered || to == StatusCancelled
	default:
		return false
	}
}

// LineSnapshot is a frozen copy of a cart line at checkout time.
type LineSnapshot struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ItemTotal decimal.Decimal `json:"itemTotal"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	PhoneNumber  string `json:"phoneNumber"`
}

type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []LineSnapshot  `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Tax               decimal.Decimal `json:"tax"`
	ShippingFee       decimal.Decimal `json:"shippingFee"`
	Total             decimal.Decimal `json:"total"`
	Status            Status          `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	CreatedAt         time.Time       `json:"createdAt"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// Store persists finalized orders. Append never overwrites; SetStatus
// is the only permitted mutation and the service validates the
// transition before calling it.
type Store interface {
	Append(ctx context.Context, o Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Get(ctx context.Context, id string) (Order, bool, error)
	SetStatus(ctx context.Context, id string, st Status) error
	Ping(ctx context.Context) error
}
