package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/price_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupPriceRoutes(rg *gin.RouterGroup) {
	prices := rg.Group("/prices")
	prices.Use(middleware.AdminAuthMiddleware())

	prices.GET("",
		middleware.RequirePermission(models.StaticPermission("prices:view")),
		price_controller.GetPrices,
	)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := prices.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("prices:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.PUT("", price_controller.UpsertPrice)
	}
}
