package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/infrastructure/auth"
	"github.com/carbyfah/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(accessTTL time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "middleware-test-secret",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "carbyfah-test",
		MaxRefreshCount:        3,
	})
}

func protectedEngine(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuth(cfg))
	engine.GET("/protegido", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":      GetUserID(c),
			"nivel_acceso": GetAccessLevel(c),
		})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func issueAccessToken(t *testing.T, svc *auth.JWTService) (string, *auth.Claims) {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      uuid.New(),
		Username:    "prueba",
		AccessLevel: "OPERADOR",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	return pair.AccessToken, claims
}

func TestJWTAuth(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	t.Run("valid token passes and exposes claims", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{JWTService: svc})
		token, claims := issueAccessToken(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), claims.UserID)
		assert.Contains(t, w.Body.String(), "OPERADOR")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{JWTService: svc})

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{JWTService: svc})

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
	})

	t.Run("expired token maps to TOKEN_EXPIRED", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{JWTService: svc})
		token := issueExpiredToken(t)

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("blacklisted JTI is rejected", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		engine := protectedEngine(JWTMiddlewareConfig{
			JWTService:     svc,
			TokenBlacklist: blacklist,
		})
		token, claims := issueAccessToken(t, svc)
		require.NoError(t, blacklist.AddToBlacklist(t.Context(), claims.ID, time.Minute))

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("user-wide invalidation rejects earlier tokens", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		engine := protectedEngine(JWTMiddlewareConfig{
			JWTService:     svc,
			TokenBlacklist: blacklist,
		})
		token, claims := issueAccessToken(t, svc)
		require.NoError(t, blacklist.AddUserTokensToBlacklist(t.Context(), claims.UserID, time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skip paths bypass authentication", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{
			JWTService: svc,
			SkipPaths:  []string{"/health"},
		})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		engine := protectedEngine(JWTMiddlewareConfig{JWTService: svc})
		pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:      uuid.New(),
			Username:    "prueba",
			AccessLevel: "CONSULTA",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// issueExpiredToken signs a token whose expiration is already behind
// now, using the same secret as the service under test.
func issueExpiredToken(t *testing.T) string {
	t.Helper()
	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID:    uuid.New().String(),
		TokenType: auth.TokenTypeAccess,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("middleware-test-secret"))
	require.NoError(t, err)
	return signed
}
