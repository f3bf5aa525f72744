package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/category_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.Use(middleware.AdminAuthMiddleware())

	categories.GET("", category_controller.GetCategories)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := categories.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("categories:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.POST("", category_controller.CreateCategory)
		write.PATCH("/:id", category_controller.UpdateCategory)
		write.DELETE("/:id", category_controller.DeleteCategory)
	}
}
