package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"BakeShop/internal/app"
	"BakeShop/internal/auth"
	"BakeShop/internal/cart"
	"BakeShop/internal/catalog"
	"BakeShop/internal/order"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAPITS(t *testing.T) *httptest.Server {
	t.Helper()

	log := zap.NewNop()
	jwt := auth.NewTokenMaker(testSecret)
	catalogStore := catalog.NewStore()
	cartSvc := cart.NewService(cart.NewMemSlot(), catalogStore, log)
	orderSvc := order.NewService(order.NewMemStore(), cartSvc, catalogStore, log)

	h := app.NewHandler(app.Deps{
		Log:     log,
		Service: "bakeshop",
		JWT:     jwt,
		Auth:    &auth.Server{Log: log, Store: auth.NewMemStore(), JWT: jwt},
		Catalog: &catalog.Server{Store: catalogStore},
		Cart:    &cart.Server{Svc: cartSvc, Log: log},
		Orders:  &order.Server{Svc: orderSvc, Log: log},
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, token string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()

	code := doJSON(t, ts, http.MethodPost, "/auth/register", "", map[string]any{
		"email":        email,
		"password":     "sourdough-rules",
		"display_name": "June",
	}, nil)
	require.Equal(t, http.StatusCreated, code)

	var lr struct {
		AccessToken string `json:"access_token"`
	}
	code = doJSON(t, ts, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": "sourdough-rules",
	}, &lr)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, lr.AccessToken)
	return lr.AccessToken
}

func TestAPI_BrowseCartCheckoutFlow(t *testing.T) {
	ts := newAPITS(t)
	tok := login(t, ts, "june@example.com")

	var products []map[string]any
	code := doJSON(t, ts, http.MethodGet, "/products?category=COOKIES", "", nil, &products)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, products)

	var product map[string]any
	code = doJSON(t, ts, http.MethodGet, "/products/cake-1", "", nil, &product)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Classic Chocolate Cake", product["name"])

	code = doJSON(t, ts, http.MethodPost, "/cart/items", tok, map[string]any{
		"product_id": "cookie-1", "quantity": 3,
	}, nil)
	require.Equal(t, http.StatusNoContent, code)

	code = doJSON(t, ts, http.MethodPost, "/cart/items", tok, map[string]any{
		"product_id": "cake-1",
	}, nil)
	require.Equal(t, http.StatusNoContent, code)

	var view struct {
		Items       []map[string]any `json:"items"`
		TotalAmount string           `json:"totalAmount"`
	}
	code = doJSON(t, ts, http.MethodGet, "/cart", tok, nil, &view)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "44.96", view.TotalAmount)

	var placed map[string]any
	code = doJSON(t, ts, http.MethodPost, "/orders", tok, map[string]any{
		"shipping_address": map[string]any{
			"fullName":     "June Baker",
			"addressLine1": "12 Rue des Fours",
			"city":         "Lyon",
			"state":        "ARA",
			"postalCode":   "69001",
			"country":      "France",
			"phoneNumber":  "+33 4 00 00 00 00",
		},
	}, &placed)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "44.96", placed["subtotal"])
	assert.Equal(t, "3.6", placed["tax"])
	assert.Equal(t, "48.56", placed["total"])
	assert.Equal(t, "processing", placed["status"])

	orderID, _ := placed["id"].(string)
	require.NotEmpty(t, orderID)

	code = doJSON(t, ts, http.MethodGet, "/cart", tok, nil, &view)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, view.Items)

	var orders []map[string]any
	code = doJSON(t, ts, http.MethodGet, "/orders", tok, nil, &orders)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, orders, 1)

	var got map[string]any
	code = doJSON(t, ts, http.MethodGet, "/orders/"+orderID, tok, nil, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, orderID, got["id"])
}

func TestAPI_AuthRequiredForCartAndOrders(t *testing.T) {
	ts := newAPITS(t)

	assert.Equal(t, http.StatusUnauthorized, doJSON(t, ts, http.MethodGet, "/cart", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, ts, http.MethodGet, "/orders", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, ts, http.MethodPost, "/cart/items", "bogus", map[string]any{
		"product_id": "cookie-1",
	}, nil))
}

func TestAPI_OrdersAreOwnerScoped(t *testing.T) {
	ts := newAPITS(t)
	tokA := login(t, ts, "a@example.com")
	tokB := login(t, ts, "b@example.com")

	code := doJSON(t, ts, http.MethodPost, "/cart/items", tokA, map[string]any{
		"product_id": "bagel-1", "quantity": 2,
	}, nil)
	require.Equal(t, http.StatusNoContent, code)

	var placed map[string]any
	code = doJSON(t, ts, http.MethodPost, "/orders", tokA, map[string]any{
		"shipping_address": map[string]any{},
	}, &placed)
	require.Equal(t, http.StatusCreated, code)
	orderID, _ := placed["id"].(string)

	assert.Equal(t, http.StatusNotFound, doJSON(t, ts, http.MethodGet, "/orders/"+orderID, tokB, nil, nil))

	var orders []map[string]any
	code = doJSON(t, ts, http.MethodGet, "/orders", tokB, nil, &orders)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, orders)
}

func TestAPI_StatusEndpointEnforcesLifecycle(t *testing.T) {
	ts := newAPITS(t)
	tok := login(t, ts, "june@example.com")

	code := doJSON(t, ts, http.MethodPost, "/cart/items", tok, map[string]any{
		"product_id": "bread-1",
	}, nil)
	require.Equal(t, http.StatusNoContent, code)

	var placed map[string]any
	code = doJSON(t, ts, http.MethodPost, "/orders", tok, map[string]any{
		"shipping_address": map[string]any{},
	}, &placed)
	require.Equal(t, http.StatusCreated, code)
	orderID, _ := placed["id"].(string)

	put := func(status string) int {
		return doJSON(t, ts, http.MethodPut, "/orders/"+orderID+"/status", tok, map[string]any{
			"status": status,
		}, nil)
	}

	assert.Equal(t, http.StatusNoContent, put("shipped"))
	assert.Equal(t, http.StatusNoContent, put("delivered"))
	assert.Equal(t, http.StatusConflict, put("processing"))
	assert.Equal(t, http.StatusBadRequest, put("teleported"))

	var got map[string]any
	code = doJSON(t, ts, http.MethodGet, "/orders/"+orderID, tok, nil, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "delivered", got["status"])
}
