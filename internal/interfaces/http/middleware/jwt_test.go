package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/infrastructure/auth"
	"github.com/baletrack/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "baletrack-test",
	})
}

func newAuthedEngine(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddleware(cfg))
	engine.GET("/protected", func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":    principal.UserID.String(),
			"company_id": principal.CompanyID.String(),
			"role":       string(principal.Role),
		})
	})
	engine.GET("/open", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()

	t.Run("valid token yields principal", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{JWTService: jwtService})

		userID := uuid.New()
		companyID := uuid.New()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: companyID,
			UserID:    userID,
			Email:     "inspector@example.com",
			Role:      string(identity.RoleInspector),
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), companyID.String())
		assert.Contains(t, w.Body.String(), "INSPECTOR")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{JWTService: jwtService})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{JWTService: jwtService})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
	})

	t.Run("refresh token cannot access protected routes", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{JWTService: jwtService})

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: uuid.New(),
			UserID:    uuid.New(),
			Role:      string(identity.RoleSupervisor),
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown role in token is rejected", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{JWTService: jwtService})

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: uuid.New(),
			UserID:    uuid.New(),
			Role:      "WAREHOUSE_ADMIN",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
	})

	t.Run("blacklisted token is rejected", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		engine := newAuthedEngine(JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
		})

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: uuid.New(),
			UserID:    uuid.New(),
			Role:      string(identity.RoleSupervisor),
		})
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("skip paths bypass authentication", func(t *testing.T) {
		engine := newAuthedEngine(JWTMiddlewareConfig{
			JWTService: jwtService,
			SkipPaths:  []string{"/open"},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
