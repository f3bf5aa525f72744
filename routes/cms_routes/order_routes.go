package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/order_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AdminAuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes
	// ════════════════════════════════════════════════════════════
	orders.GET("",
		middleware.RequirePermission(models.StaticPermission("orders:view")),
		order_controller.GetOrders,
	)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := orders.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("orders:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.PATCH("/:id/status", order_controller.UpdateOrderStatus)
	}
}
