package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/Barfer-herni/raw-barfer-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates the admin JWT from cookie or Authorization
// header and checks it against the session table.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := utils.ValidateAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		sessionService := services.GetAdminSessionService()
		tokenHash := services.GetCredentialService().HashToken(token)

		exists, err := sessionService.SessionExists(ctx, tokenHash)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			c.Abort()
			return
		}

		if err := sessionService.UpdateSessionActivity(ctx, tokenHash); err != nil {
			// Session bookkeeping failure shouldn't block the request
			log.Printf("[auth] failed to update session activity: %v", err)
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Set("adminRole", claims.Role)
		c.Set("adminPermissions", claims.Permissions)
		c.Set("adminTokenHash", tokenHash)

		c.Next()
	}
}

// GetAdminIDFromContext returns the authenticated admin id.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return "", false
	}
	return adminID.(string), true
}

// GetAdminPermissionsFromContext returns the raw permission strings granted
// to the authenticated admin.
func GetAdminPermissionsFromContext(c *gin.Context) []string {
	perms, exists := c.Get("adminPermissions")
	if !exists {
		return nil
	}
	if list, ok := perms.([]string); ok {
		return list
	}
	return nil
}
