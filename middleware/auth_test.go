// auth_test.go - Tests for token verification and role gating

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "testsecret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.GetString(ContextRole),
		})
	})
	r.GET("/admin", AuthMiddleware(testSecret), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "ok"})
	})
	return r
}

func serve(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMissingToken(t *testing.T) {
	router := authTestRouter()
	w := serve(router, "/protected", "")
	assert.Equal(t, 401, w.Code)
}

func TestMalformedToken(t *testing.T) {
	router := authTestRouter()
	w := serve(router, "/protected", "not-a-token")
	assert.Equal(t, 401, w.Code)
}

func TestExpiredToken(t *testing.T) {
	router := authTestRouter()
	token := signToken(t, jwt.MapClaims{
		ContextUserID: 1,
		ContextRole:   "operator",
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})
	w := serve(router, "/protected", token)
	assert.Equal(t, 401, w.Code)
}

func TestWrongSigningKey(t *testing.T) {
	router := authTestRouter()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		ContextUserID: 1,
		ContextRole:   "operator",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte("othersecret"))
	w := serve(router, "/protected", signed)
	assert.Equal(t, 401, w.Code)
}

func TestValidTokenAttachesIdentity(t *testing.T) {
	router := authTestRouter()
	token := signToken(t, jwt.MapClaims{
		ContextUserID: 42,
		ContextRole:   "operator",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	w := serve(router, "/protected", token)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"operator"`)
}

func TestRequireRole(t *testing.T) {
	router := authTestRouter()

	operator := signToken(t, jwt.MapClaims{
		ContextUserID: 1,
		ContextRole:   "operator",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	w := serve(router, "/admin", operator)
	assert.Equal(t, 403, w.Code)

	admin := signToken(t, jwt.MapClaims{
		ContextUserID: 2,
		ContextRole:   "admin",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})
	w = serve(router, "/admin", admin)
	assert.Equal(t, 200, w.Code)
}
