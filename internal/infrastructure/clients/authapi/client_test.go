package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/clinic-backend/internal/infrastructure/clients/authapi"
	apperrors "github.com/dentalflow/clinic-backend/pkg/errors"
)

func TestClient_SignIn(t *testing.T) {
	t.Run("returns token on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "service-key", r.Header.Get("apikey"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "emily@dentalflow.com", body["email"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "tok-123",
				"token_type":   "bearer",
				"expires_in":   3600,
			})
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		token, err := client.SignIn(context.Background(), "emily@dentalflow.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "tok-123", token.AccessToken)
	})

	t.Run("bad credentials surface as unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		_, err := client.SignIn(context.Background(), "emily@dentalflow.com", "wrong")

		require.Error(t, err)
		appErr, ok := err.(*apperrors.AppError)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	})
}

func TestClient_GetUser(t *testing.T) {
	t.Run("resolves principal", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]string{
				"id":    "u-42",
				"email": "emily@dentalflow.com",
			})
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		principal, err := client.GetUser(context.Background(), "tok-123")

		require.NoError(t, err)
		require.NotNil(t, principal)
		assert.Equal(t, "u-42", principal.ID)
		assert.Equal(t, "emily@dentalflow.com", principal.Email)
	})

	t.Run("empty token is an absence, no request made", func(t *testing.T) {
		client := authapi.NewClient("http://127.0.0.1:1", "service-key")
		principal, err := client.GetUser(context.Background(), "")

		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("rejected token is an absence", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		principal, err := client.GetUser(context.Background(), "expired")

		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("unknown token subject is an absence", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		principal, err := client.GetUser(context.Background(), "tok-deleted-user")

		require.NoError(t, err)
		assert.Nil(t, principal)
	})

	t.Run("server failure propagates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := authapi.NewClient(server.URL, "service-key")
		_, err := client.GetUser(context.Background(), "tok-123")

		require.Error(t, err)
	})
}
