package middleware

import (
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

// RequirePermission blocks the request unless the authenticated admin's
// grant set satisfies the wanted permission. Super admins pass everything.
func RequirePermission(want models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := c.Get("adminRole"); ok && role == "super_admin" {
			c.Next()
			return
		}

		granted := GetAdminPermissionsFromContext(c)
		if !models.HasPermission(granted, want) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - missing permission"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCategoryView checks the dynamic per-category grant, taking the
// category name from the named path or query parameter.
func RequireCategoryView(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, ok := c.Get("adminRole"); ok && role == "super_admin" {
			c.Next()
			return
		}

		category := c.Param(param)
		if category == "" {
			category = c.Query(param)
		}
		if category == "" {
			// No category requested, nothing to gate.
			c.Next()
			return
		}

		granted := GetAdminPermissionsFromContext(c)
		if !models.HasPermission(granted, models.CategoryViewPermission(category)) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - missing category permission"))
			c.Abort()
			return
		}

		c.Next()
	}
}
