package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revanth-raj24/AlmirahShop/models"
	"github.com/revanth-raj24/AlmirahShop/repository"
)

// RequireApprovedSeller blocks sellers that an admin has not approved yet.
// The approval flag is read from the database on every request so a
// revocation takes effect immediately, not at next token refresh. Admins
// pass through.
func RequireApprovedSeller(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) == models.RoleAdmin {
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}
		if user.IsBlocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			c.Abort()
			return
		}
		if !user.IsApproved {
			c.JSON(http.StatusForbidden, gin.H{
				"error":  "Seller account pending approval",
				"reason": "seller_not_approved",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
