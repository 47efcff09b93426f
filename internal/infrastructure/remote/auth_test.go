// internal/infrastructure/remote/auth_test.go
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
)

func authConfig(url string) config.RemoteConfig {
	return config.RemoteConfig{AuthBaseURL: url, RequestTimeout: testTimeout}
}

func TestAuthLogin(t *testing.T) {
	t.Run("successful login returns token and role", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "shopper@example.com", body["email"])
			assert.Equal(t, "hunter22", body["password"])

			_, _ = w.Write([]byte(`{"token":"jwt-abc","role":"user"}`))
		}))
		defer server.Close()

		client := NewAuthClient(authConfig(server.URL), testLogger())

		result, err := client.Login(context.Background(), "shopper@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", result.Token)
		assert.Equal(t, "user", result.Role)
	})

	t.Run("rejected credentials map to ErrInvalidCredentials", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusBadRequest} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			client := NewAuthClient(authConfig(server.URL), testLogger())
			_, err := client.Login(context.Background(), "shopper@example.com", "wrong")
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			server.Close()
		}
	})

	t.Run("outage is not an invalid-credentials error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewAuthClient(authConfig(server.URL), testLogger())

		_, err := client.Login(context.Background(), "shopper@example.com", "hunter22")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Shopper", body["name"])
		assert.Equal(t, "new@example.com", body["email"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewAuthClient(authConfig(server.URL), testLogger())

	err := client.Register(context.Background(), "New Shopper", "new@example.com", "hunter22")
	require.NoError(t, err)
}
