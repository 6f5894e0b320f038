package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/revanth-raj24/AlmirahShop/services"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// Authenticate validates the bearer access token and stores the caller's
// identity on the gin context.
func Authenticate(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.ValidateToken(tokenString, "access")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		if _, err := uuid.Parse(userID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxEmail, email)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireRole allows only the named roles past. Runs after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		c.Abort()
	}
}

// GetUserID returns the authenticated user's ID from the context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ctxUserID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetRole returns the authenticated user's role from the context.
func GetRole(c *gin.Context) string {
	return c.GetString(ctxRole)
}

// GetCaller assembles the services.Caller for the authenticated user.
func GetCaller(c *gin.Context) (services.Caller, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return services.Caller{}, false
	}
	return services.Caller{ID: id, Role: GetRole(c)}, true
}
