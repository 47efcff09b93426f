// internal/infrastructure/remote/catalog_test.go
package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/catalog"
)

func catalogConfig(url string) config.RemoteConfig {
	return config.RemoteConfig{CatalogBaseURL: url, RequestTimeout: testTimeout}
}

func TestCatalogProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":"p1","title":"Headphones","price":59.99,"image":"https://cdn.example.com/p1.jpg","category":"electronics","description":"Over-ear"},
			{"id":"p2","title":"Mug","price":8.5,"image":"","category":"kitchen","description":""}
		]`))
	}))
	defer server.Close()

	client := NewCatalogClient(catalogConfig(server.URL), testLogger())

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "Headphones", products[0].Title)
	assert.Equal(t, 59.99, products[0].Price)
}

func TestCatalogProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/products/p1", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"p1","title":"Headphones","price":59.99}`))
		}))
		defer server.Close()

		client := NewCatalogClient(catalogConfig(server.URL), testLogger())

		product, err := client.Product(context.Background(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Headphones", product.Title)
	})

	t.Run("missing product surfaces the 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewCatalogClient(catalogConfig(server.URL), testLogger())

		_, err := client.Product(context.Background(), "missing")
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})
}

func TestCatalogAdmin(t *testing.T) {
	t.Run("create sends the credential and decodes the result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/admin/products", r.URL.Path)
			assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Keyboard", body["title"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"p9","title":"Keyboard","price":45}`))
		}))
		defer server.Close()

		client := NewCatalogClient(catalogConfig(server.URL), testLogger())

		product, err := client.CreateProduct(context.Background(), "admin-token", catalog.ProductInput{
			Title: "Keyboard",
			Price: 45,
		})
		require.NoError(t, err)
		assert.Equal(t, "p9", product.ID)
	})

	t.Run("update targets the product path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/admin/products/p9", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"p9","title":"Keyboard v2","price":49}`))
		}))
		defer server.Close()

		client := NewCatalogClient(catalogConfig(server.URL), testLogger())

		product, err := client.UpdateProduct(context.Background(), "admin-token", "p9", catalog.ProductInput{
			Title: "Keyboard v2",
			Price: 49,
		})
		require.NoError(t, err)
		assert.Equal(t, "Keyboard v2", product.Title)
	})

	t.Run("delete targets the product path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/admin/products/p9", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := NewCatalogClient(catalogConfig(server.URL), testLogger())

		require.NoError(t, client.DeleteProduct(context.Background(), "admin-token", "p9"))
	})
}
