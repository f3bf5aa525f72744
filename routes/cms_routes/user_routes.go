package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/user_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AdminAuthMiddleware())

	users.GET("",
		middleware.RequirePermission(models.StaticPermission("users:view")),
		user_controller.GetUsers,
	)
}
