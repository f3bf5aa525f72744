package cms_routes

import (
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/client_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupClientRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.Use(middleware.AdminAuthMiddleware())
	clients.Use(middleware.RateLimiter(120, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Read Routes
	// ════════════════════════════════════════════════════════════
	view := clients.Group("")
	view.Use(middleware.RequirePermission(models.StaticPermission("clients:view")))
	{
		view.GET("", client_controller.GetClientsPaginated)
		view.GET("/categorization", client_controller.GetClientCategorization)
		view.GET("/categories/stats", client_controller.GetClientCategoriesStats)
	}

	// Unpaginated export view is additionally gated per catalog category
	// when ?category= names one.
	clients.GET("/by-category",
		middleware.RequirePermission(models.StaticPermission("clients:view")),
		middleware.RequireCategoryView("category"),
		client_controller.GetClientsByCategory,
	)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := clients.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("clients:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.PATCH("/whatsapp-contact", client_controller.UpdateWhatsAppContact)
	}
}
