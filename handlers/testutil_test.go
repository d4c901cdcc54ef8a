// testutil_test.go - Shared helpers for handler tests

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-asset-backend/config"
	"go-asset-backend/database"
	"go-asset-backend/middleware"
	"go-asset-backend/models"
)

// newTestHandler creates a fresh sqlite database at dbPath and returns a
// handler wired to it. Admin seeding is disabled; tests create their own
// users.
func newTestHandler(t *testing.T, dbPath string) *Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	_ = os.Remove(dbPath)
	t.Cleanup(func() { _ = os.Remove(dbPath) })

	cfg := &config.Config{
		JWTSecret:   "testsecret",
		DBPath:      dbPath,
		CreateAdmin: false,
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)

	return New(db, nil, nil, cfg, zap.NewNop())
}

// setupRouter builds a router with the same route layout as main.
func setupRouter(h *Handler) *gin.Engine {
	r := gin.New()

	auth := r.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	assets := r.Group("/api/assets")
	assets.Use(middleware.AuthMiddleware(h.Cfg.JWTSecret))
	assets.GET("", h.ListAssets)
	assets.POST("", h.CreateAsset)
	assets.GET("/:id", h.GetAsset)
	assets.PUT("/:id", h.UpdateAsset)
	assets.DELETE("/:id", h.DeleteAsset)

	users := r.Group("/api/users")
	users.Use(middleware.AuthMiddleware(h.Cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.DELETE("/:id", h.DeleteUser)

	return r
}

// createUser inserts a user with a hashed password and returns the record
// and a valid token for it.
func createUser(t *testing.T, h *Handler, name, email, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, h.DB.Create(&user).Error)

	token, err := GenerateToken(&user, h.Cfg.JWTSecret)
	require.NoError(t, err)
	return user, token
}

// doRequest performs a JSON request against the router and returns the
// recorded response.
func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
