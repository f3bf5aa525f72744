package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/product_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.Use(middleware.AdminAuthMiddleware())

	products.GET("", product_controller.GetProducts)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := products.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("products:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.POST("", product_controller.CreateProduct)
		write.PATCH("/:id", product_controller.UpdateProduct)
		write.DELETE("/:id", product_controller.DeleteProduct)
	}
}
