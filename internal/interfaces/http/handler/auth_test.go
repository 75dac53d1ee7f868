package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	identityapp "github.com/carbyfah/backend/internal/application/identity"
	"github.com/carbyfah/backend/internal/domain/identity"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/carbyfah/backend/internal/infrastructure/auth"
	"github.com/carbyfah/backend/internal/infrastructure/config"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubUserRepo is an in-memory account store for handler tests
type stubUserRepo struct {
	byUsername map[string]*identity.User
}

func newStubUserRepo(users ...*identity.User) *stubUserRepo {
	repo := &stubUserRepo{byUsername: make(map[string]*identity.User)}
	for _, u := range users {
		repo.byUsername[u.Username] = u
	}
	return repo
}

func (r *stubUserRepo) Save(_ context.Context, user *identity.User) error {
	r.byUsername[user.Username] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindByProfile(_ context.Context, _ uuid.UUID) (*identity.User, error) {
	return nil, shared.ErrNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context, _ shared.Filter) ([]*identity.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return 0, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *stubUserRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret",
		RefreshSecret:          "test-refresh-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "carbyfah-test",
		MaxRefreshCount:        5,
	})
}

func setupAuthRouter(t *testing.T, users ...*identity.User) (*gin.Engine, *identityapp.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := testJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	authService := identityapp.NewAuthService(
		newStubUserRepo(users...),
		jwtService,
		blacklist,
		identityapp.DefaultAuthServiceConfig(),
		zap.NewNop(),
	)

	engine := gin.New()
	engine.Use(middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      []string{"/api/v1/auth/login", "/api/v1/auth/refresh"},
	}))

	api := engine.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(api)

	return engine, authService
}

func mustNewUser(t *testing.T, username, password string, level identity.AccessLevel) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, password, level, nil)
	require.NoError(t, err)
	return user
}

func postJSON(engine *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials return a token pair", func(t *testing.T) {
		user := mustNewUser(t, "admin", "ClaveSegura123", identity.AccessAdmin)
		engine, _ := setupAuthRouter(t, user)

		w := postJSON(engine, "/api/v1/auth/login", gin.H{
			"username": "admin",
			"password": "ClaveSegura123",
		}, nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				AccessToken  string `json:"access_token"`
				RefreshToken string `json:"refresh_token"`
				TokenType    string `json:"token_type"`
				User         struct {
					Username    string `json:"username"`
					AccessLevel string `json:"nivel_acceso"`
				} `json:"usuario"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.NotEmpty(t, resp.Data.RefreshToken)
		assert.Equal(t, "Bearer", resp.Data.TokenType)
		assert.Equal(t, "admin", resp.Data.User.Username)
		assert.Equal(t, "ADMINISTRADOR", resp.Data.User.AccessLevel)
	})

	t.Run("wrong password returns 401 without leaking which part failed", func(t *testing.T) {
		user := mustNewUser(t, "admin", "ClaveSegura123", identity.AccessAdmin)
		engine, _ := setupAuthRouter(t, user)

		w := postJSON(engine, "/api/v1/auth/login", gin.H{
			"username": "admin",
			"password": "incorrecta",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("unknown username returns the same 401", func(t *testing.T) {
		engine, _ := setupAuthRouter(t)

		w := postJSON(engine, "/api/v1/auth/login", gin.H{
			"username": "nadie",
			"password": "ClaveSegura123",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("repeated failures lock the account", func(t *testing.T) {
		user := mustNewUser(t, "admin", "ClaveSegura123", identity.AccessAdmin)
		engine, _ := setupAuthRouter(t, user)

		cfg := identityapp.DefaultAuthServiceConfig()
		var last *httptest.ResponseRecorder
		for i := 0; i < cfg.MaxLoginAttempts; i++ {
			last = postJSON(engine, "/api/v1/auth/login", gin.H{
				"username": "admin",
				"password": "incorrecta",
			}, nil)
		}
		require.NotNil(t, last)
		assert.Contains(t, last.Body.String(), "ACCOUNT_LOCKED")

		// Even the right password is rejected while locked.
		w := postJSON(engine, "/api/v1/auth/login", gin.H{
			"username": "admin",
			"password": "ClaveSegura123",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ACCOUNT_LOCKED")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		engine, _ := setupAuthRouter(t)

		w := postJSON(engine, "/api/v1/auth/login", gin.H{"username": "admin"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	user := mustNewUser(t, "operador", "ClaveSegura123", identity.AccessOperator)
	engine, _ := setupAuthRouter(t, user)

	login := postJSON(engine, "/api/v1/auth/login", gin.H{
		"username": "operador",
		"password": "ClaveSegura123",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))

	w := postJSON(engine, "/api/v1/auth/refresh", gin.H{
		"refresh_token": loginResp.Data.RefreshToken,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := postJSON(engine, "/api/v1/auth/refresh", gin.H{
			"refresh_token": "no-es-un-token",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	user := mustNewUser(t, "consulta", "ClaveSegura123", identity.AccessReadOnly)
	engine, _ := setupAuthRouter(t, user)

	login := postJSON(engine, "/api/v1/auth/login", gin.H{
		"username": "consulta",
		"password": "ClaveSegura123",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)

	var loginResp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginResp))
	bearer := map[string]string{"Authorization": "Bearer " + loginResp.Data.AccessToken}

	t.Run("me returns the signed-in account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/yo", nil)
		req.Header.Set("Authorization", bearer["Authorization"])
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "consulta")
	})

	t.Run("me without a token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/yo", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		w := postJSON(engine, "/api/v1/auth/logout", nil, bearer)
		require.Equal(t, http.StatusNoContent, w.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/yo", nil)
		req.Header.Set("Authorization", bearer["Authorization"])
		after := httptest.NewRecorder()
		engine.ServeHTTP(after, req)

		assert.Equal(t, http.StatusUnauthorized, after.Code)
		assert.Contains(t, after.Body.String(), "TOKEN_REVOKED")
	})
}
