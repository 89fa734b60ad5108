package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/repository"
	"github.com/hgpnguyen/restaurant/utils"
)

// AuthMiddleware checks the bearer token and (if any are given) enforces the
// allowed roles. The role is looked up from group membership on every request
// rather than read from the token, so removing someone from a group locks
// them out immediately.
func AuthMiddleware(db *gorm.DB, secret string, allowed ...entity.Role) gin.HandlerFunc {
	users := repository.NewUserRepository(db)

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(401, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(401, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		role, err := users.ResolveRole(claims.UserID)
		if err != nil {
			// token for a deleted user
			c.JSON(401, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", role)

		if len(allowed) > 0 {
			ok := false
			for _, r := range allowed {
				if role == r {
					ok = true
					break
				}
			}
			if !ok {
				c.JSON(403, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
