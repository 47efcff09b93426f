// internal/infrastructure/remote/orders_test.go
package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/order"
)

func ordersConfig(url string) config.RemoteConfig {
	return config.RemoteConfig{OrdersBaseURL: url, RequestTimeout: testTimeout}
}

func TestOrdersPlace(t *testing.T) {
	var received map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewOrdersClient(ordersConfig(server.URL), testLogger())

	placedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	o := &order.Order{
		Items: []order.LineItem{
			{
				ProductID:       "p1",
				Name:            "Headphones",
				UnitPrice:       decimal.RequireFromString("60"),
				DiscountedPrice: decimal.RequireFromString("48"),
				Quantity:        2,
			},
		},
		TotalAmount:  decimal.RequireFromString("99.99"),
		ShippingFee:  decimal.RequireFromString("3.99"),
		PlacedAt:     placedAt,
		DeliveryDate: placedAt.AddDate(0, 0, 5),
	}

	require.NoError(t, client.Place(context.Background(), "token-123", o))

	assert.Equal(t, 99.99, received["totalAmount"])
	assert.Equal(t, 3.99, received["shippingFee"])
	assert.Equal(t, "2026-03-14T10:30:00.000Z", received["placedAt"])
	assert.Equal(t, "2026-03-19T10:30:00.000Z", received["deliveryDate"])

	items, ok := received["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "p1", first["productId"])
	assert.Equal(t, float64(60), first["price"])
	assert.Equal(t, float64(48), first["discountedPrice"])
	assert.Equal(t, float64(2), first["quantity"])
}

func TestOrdersPlaceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewOrdersClient(ordersConfig(server.URL), testLogger())

	err := client.Place(context.Background(), "token-123", &order.Order{PlacedAt: time.Now(), DeliveryDate: time.Now()})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestOrdersHistory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/orders/history", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"orderId":"o-2","totalAmount":99.99,"placedAt":"2026-03-14T10:30:00Z","deliveryDate":"2026-03-19T10:30:00Z"},
			{"orderId":"o-1","totalAmount":12.5,"placedAt":"2026-02-01T08:00:00Z","deliveryDate":"2026-02-06T08:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := NewOrdersClient(ordersConfig(server.URL), testLogger())

	summaries, err := client.History(context.Background(), "token-123")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "o-2", summaries[0].OrderID)
	assert.Equal(t, 99.99, summaries[0].TotalAmount)
}
