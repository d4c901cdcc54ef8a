// auth.go - Token verification and role-based access middleware

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys populated by AuthMiddleware for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware verifies the bearer token from the x-auth-token header and
// stores the caller's identity and role in the request context. Requests
// without a valid, unexpired token are rejected with 401 before any handler
// runs.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("x-auth-token")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Access denied. Token not provided."})
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token."})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token."})
			return
		}

		// JWT numbers decode as float64.
		userID, ok := claims[ContextUserID].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token."})
			return
		}
		role, _ := claims[ContextRole].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextRole, role)
		c.Next()
	}
}

// RequireRole gates a route to callers whose role is in the allowed set.
// Must run after AuthMiddleware. Stateless: the role comes from the verified
// token, not from a store lookup.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "Not authorized."})
	}
}
