// internal/infrastructure/remote/cartstore_test.go
package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
)

const testTimeout = 2 * time.Second

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func cartStoreConfig(url string) config.RemoteConfig {
	return config.RemoteConfig{CartStoreBaseURL: url, RequestTimeout: testTimeout}
}

func TestCartStoreFetch(t *testing.T) {
	t.Run("maps wire items to line items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/cart", r.URL.Path)
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"productId":"p1","name":"Headphones","price":59.99,"image":"https://cdn.example.com/p1.jpg","quantity":2,"category":"electronics","description":"Over-ear"}
			]`))
		}))
		defer server.Close()

		client := NewCartStoreClient(cartStoreConfig(server.URL), testLogger())

		items, err := client.Fetch(context.Background(), "token-123")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].ProductID)
		assert.Equal(t, "Headphones", items[0].Name)
		assert.Equal(t, "https://cdn.example.com/p1.jpg", items[0].ImageURL)
		assert.Equal(t, 2, items[0].Quantity)
		assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("59.99")))
	})

	t.Run("empty remote cart", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewCartStoreClient(cartStoreConfig(server.URL), testLogger())

		items, err := client.Fetch(context.Background(), "token-123")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("server error surfaces as StatusError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewCartStoreClient(cartStoreConfig(server.URL), testLogger())

		_, err := client.Fetch(context.Background(), "token-123")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client := NewCartStoreClient(cartStoreConfig(server.URL), testLogger())

		_, err := client.Fetch(context.Background(), "token-123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed response")
	})
}

func TestCartStoreReplace(t *testing.T) {
	var received struct {
		Items []map[string]interface{} `json:"items"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/sync", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewCartStoreClient(cartStoreConfig(server.URL), testLogger())

	err := client.Replace(context.Background(), "token-123", []cart.LineItem{
		{
			ProductID: "p1",
			Name:      "Headphones",
			ImageURL:  "https://cdn.example.com/p1.jpg",
			Category:  "electronics",
			UnitPrice: decimal.RequireFromString("59.99"),
			Quantity:  2,
		},
	})
	require.NoError(t, err)

	require.Len(t, received.Items, 1)
	assert.Equal(t, "p1", received.Items[0]["productId"])
	assert.Equal(t, "Headphones", received.Items[0]["name"])
	assert.Equal(t, "https://cdn.example.com/p1.jpg", received.Items[0]["image"])
	assert.Equal(t, 59.99, received.Items[0]["price"])
	assert.Equal(t, float64(2), received.Items[0]["quantity"])
}
