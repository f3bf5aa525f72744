package cms_routes

import (
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/analytics_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AdminAuthMiddleware())
	analytics.Use(middleware.RateLimiter(60, time.Minute))
	analytics.Use(middleware.RequirePermission(models.StaticPermission("analytics:view")))
	{
		analytics.GET("/balance", analytics_controller.GetBalanceSheet)
		analytics.GET("/balance/pdf", analytics_controller.DownloadBalancePDF)
		analytics.GET("/sales-by-category", analytics_controller.GetSalesByCategory)
		analytics.GET("/quantity-by-month", analytics_controller.GetQuantityByMonth)
		analytics.GET("/delivery-types", analytics_controller.GetDeliveryTypeStats)
	}
}
