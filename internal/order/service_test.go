package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"BakeShop/internal/cart"
	"BakeShop/internal/catalog"
)

type fixture struct {
	svc     *Service
	cartSvc *cart.Service
	catalog *catalog.Store
	store   *MemStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cat := catalog.NewStore()
	cartSvc := cart.NewService(cart.NewMemSlot(), cat, zap.NewNop())
	store := NewMemStore()
	return fixture{
		svc:     NewService(store, cartSvc, cat, zap.NewNop()),
		cartSvc: cartSvc,
		catalog: cat,
		store:   store,
	}
}

var testAddr = ShippingAddress{
	FullName:     "June Baker",
	AddressLine1: "12 Rue des Fours",
	City:         "Lyon",
	State:        "ARA",
	PostalCode:   "69001",
	Country:      "France",
	PhoneNumber:  "+33 4 00 00 00 00",
}

func TestPlace_ComputesTotalsAndClearsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 3 x 3.99 + 1 x 32.99
	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 3))
	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cake-1", 1))

	o, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	assert.Equal(t, "44.96", o.Subtotal.String())
	assert.Equal(t, "3.6", o.Tax.String())
	assert.True(t, o.ShippingFee.IsZero())
	assert.Equal(t, "48.56", o.Total.String())
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, "u1", o.UserID)
	assert.Regexp(t, `^ORD-`, o.ID)
	assert.Equal(t, o.CreatedAt.Add(deliveryLeadTime), o.EstimatedDelivery)
	assert.Equal(t, testAddr, o.ShippingAddress)

	require.Len(t, o.Items, 2)
	for _, it := range o.Items {
		assert.True(t, it.ItemTotal.Equal(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))))
	}

	orders, err := f.svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o.ID, orders[0].ID)

	view, err := f.cartSvc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestPlace_EmptyCartFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Place(ctx, "u1", testAddr)
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := f.svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlace_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Place(context.Background(), "", testAddr)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestPlace_VanishedProductAbortsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 1))
	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "bagel-1", 2))

	f.catalog.Remove(ctx, "bagel-1")

	_, err := f.svc.Place(ctx, "u1", testAddr)
	assert.ErrorIs(t, err, ErrProductUnavailable)

	// nothing was recorded and the cart survived
	orders, _ := f.svc.ListForUser(ctx, "u1")
	assert.Empty(t, orders)
	view, _ := f.cartSvc.Get(ctx, "u1")
	assert.Len(t, view.Items, 2)
}

func TestSnapshotsImmuneToCatalogChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 2))
	o, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	p, _ := f.catalog.Get(ctx, "cookie-1")
	p.Price = p.Price.Mul(decimal.NewFromInt(10))
	f.catalog.Put(ctx, p)

	got, found, err := f.svc.Get(ctx, "u1", o.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "3.99", got.Items[0].Price.String())
	assert.Equal(t, "7.98", got.Items[0].ItemTotal.String())
	assert.True(t, got.Total.Equal(o.Total))
}

type stuckClearSlot struct {
	cart.Slot
	err error
}

func (s stuckClearSlot) Delete(context.Context, string) error { return s.err }

func TestPlace_ClearFailureStillReturnsRecordedOrder(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("slot unavailable")

	cat := catalog.NewStore()
	cartSvc := cart.NewService(stuckClearSlot{Slot: cart.NewMemSlot(), err: boom}, cat, zap.NewNop())
	store := NewMemStore()
	svc := NewService(store, cartSvc, cat, zap.NewNop())

	require.NoError(t, cartSvc.AddItem(ctx, "u1", "cookie-1", 1))

	o, err := svc.Place(ctx, "u1", testAddr)
	assert.ErrorIs(t, err, ErrCartClearFailed)
	require.NotEmpty(t, o.ID)

	// the order is durable even though clearing failed
	got, found, err := store.Get(ctx, o.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "u1", got.UserID)
}

func TestListForUser_NewestFirstAndOwnerFiltered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 1))
	first, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cake-1", 1))
	second, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	require.NoError(t, f.cartSvc.AddItem(ctx, "u2", "bagel-1", 1))
	_, err = f.svc.Place(ctx, "u2", testAddr)
	require.NoError(t, err)

	orders, err := f.svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestGet_ForeignOrderReadsAsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 1))
	o, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	_, found, err := f.svc.Get(ctx, "u2", o.ID)
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = f.svc.Get(ctx, "u1", "ORD-NOPE")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 1))
	o, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(ctx, o.ID, StatusShipped))
	require.NoError(t, f.svc.UpdateStatus(ctx, o.ID, StatusDelivered))

	err = f.svc.UpdateStatus(ctx, o.ID, StatusProcessing)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, found, err := f.svc.Get(ctx, "u1", o.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, StatusDelivered, got.Status)
}

func TestUpdateStatus_CancellationRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cartSvc.AddItem(ctx, "u1", "cookie-1", 1))
	o, err := f.svc.Place(ctx, "u1", testAddr)
	require.NoError(t, err)

	require.NoError(t, f.svc.UpdateStatus(ctx, o.ID, StatusCancelled))

	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, o.ID, StatusShipped), ErrInvalidTransition)
	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, o.ID, StatusProcessing), ErrInvalidTransition)
}

func TestUpdateStatus_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, "ORD-NOPE", StatusShipped), ErrOrderNotFound)
	assert.ErrorIs(t, f.svc.UpdateStatus(ctx, "ORD-NOPE", Status("teleported")), ErrBadStatus)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},
		{StatusShipped, StatusProcessing, false},
		{StatusDelivered, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusProcessing, false},
		{StatusCancelled, StatusShipped, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
