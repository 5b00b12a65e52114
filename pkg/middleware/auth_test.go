package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testJWTConfig = utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}

func identityEcho(t *testing.T, got *utils.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		*got = ident
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthValidToken(t *testing.T) {
	token, _, err := utils.GenerateToken("alice@example.com", "USER", testJWTConfig)
	require.NoError(t, err)

	var got utils.Identity
	handler := Auth(testJWTConfig, zap.NewNop())(identityEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", got.Subject)
	assert.Equal(t, "USER", got.Role)
}

func TestAuthMissingHeader(t *testing.T) {
	handler := Auth(testJWTConfig, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	handler := Auth(testJWTConfig, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	token, _, err := utils.GenerateToken("alice@example.com", "USER", utils.JWTConfig{Secret: "other", ExpiryHours: 1})
	require.NoError(t, err)

	handler := Auth(testJWTConfig, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAllowsAdminRole(t *testing.T) {
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ctx := utils.SetIdentityContext(httptest.NewRequest(http.MethodPost, "/api/products", nil).Context(),
		utils.Identity{Subject: "admin@example.com", Role: "ADMIN"})
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRejectsUserRole(t *testing.T) {
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	ctx := utils.SetIdentityContext(httptest.NewRequest(http.MethodPost, "/api/products", nil).Context(),
		utils.Identity{Subject: "alice@example.com", Role: "USER"})
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminWithoutIdentity(t *testing.T) {
	handler := Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
