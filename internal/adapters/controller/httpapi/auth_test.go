package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return raw
}

func testAuth() *Auth {
	return NewAuthWithKeyfunc(func(_ *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	var gotUserID string
	handler := testAuth().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes the subject through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "user-1"}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
