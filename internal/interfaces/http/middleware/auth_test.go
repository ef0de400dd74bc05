package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/facturo/backend/internal/application/identity"
	"github.com/facturo/backend/internal/infrastructure/auth"
	"github.com/facturo/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionResolver struct {
	mock.Mock
}

func (m *mockSessionResolver) Resolve(ctx context.Context, ident *auth.Identity) (*identityapp.Session, error) {
	args := m.Called(ctx, ident)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.Session), args.Error(1)
}

func newAuthTestRouter(t *testing.T, resolver SessionResolver) (*gin.Engine, *auth.TokenVerifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier := auth.NewTokenVerifier(config.JWTConfig{
		Secret: "test-secret-key-for-auth-middleware",
		Issuer: "facturo",
	})

	router := gin.New()
	router.Use(Auth(verifier, resolver))
	router.GET("/protected", func(c *gin.Context) {
		tenantID, ok := GetTenantID(c)
		require.True(t, ok)
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": tenantID.String(),
			"user_id":   userID.String(),
			"role":      GetRole(c),
		})
	})
	return router, verifier
}

func TestAuth_ValidToken(t *testing.T) {
	resolver := new(mockSessionResolver)
	router, verifier := newAuthTestRouter(t, resolver)

	session := &identityapp.Session{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Role:     "owner",
	}
	resolver.On("Resolve", mock.Anything, mock.MatchedBy(func(ident *auth.Identity) bool {
		return ident.Subject == "sub-1" && ident.Email == "user@example.com"
	})).Return(session, nil)

	token, err := verifier.Mint(auth.Identity{Subject: "sub-1", Email: "user@example.com"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), session.TenantID.String())
	resolver.AssertExpectations(t)
}

func TestAuth_MissingHeader(t *testing.T) {
	resolver := new(mockSessionResolver)
	router, _ := newAuthTestRouter(t, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAuth_MalformedHeader(t *testing.T) {
	resolver := new(mockSessionResolver)
	router, _ := newAuthTestRouter(t, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	resolver := new(mockSessionResolver)
	router, verifier := newAuthTestRouter(t, resolver)

	token, err := verifier.Mint(auth.Identity{Subject: "sub-1"}, -time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuth_GarbageToken(t *testing.T) {
	resolver := new(mockSessionResolver)
	router, _ := newAuthTestRouter(t, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
