package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gameopolis-api/internal/auth"
	"gameopolis-api/internal/config"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "gameopolis123",
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := auth.NewService(testConfig())

	token, err := svc.Login("admin", "gameopolis123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := auth.NewService(testConfig())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login("root", "gameopolis123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginPrefersBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	conf := testConfig()
	conf.AdminPasswordHash = string(hash)

	svc := auth.NewService(conf)

	_, err = svc.Login("admin", "hashed-secret")
	assert.NoError(t, err)

	// The plaintext fallback is ignored once a hash is configured.
	_, err = svc.Login("admin", "gameopolis123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	conf := testConfig()
	conf.TokenTTL = -time.Minute
	svc := auth.NewService(conf)

	token, err := svc.Login("admin", "gameopolis123")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	svc := auth.NewService(testConfig())
	token, err := svc.Login("admin", "gameopolis123")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "different-secret"
	_, err = auth.NewService(other).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequireMiddleware(t *testing.T) {
	svc := auth.NewService(testConfig())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "admin", auth.Username(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	protected := svc.Require(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.Login("admin", "gameopolis123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
