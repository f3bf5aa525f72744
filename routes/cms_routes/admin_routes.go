package cms_routes

import (
	"time"

	admin_auth "github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/admin_controller/auth"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminAuthRoutes sets up login/logout/me with appropriate middleware
func SetupAdminAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/login", middleware.RateLimiter(10, time.Minute), admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := auth.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)
	}
}
