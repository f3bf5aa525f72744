package cms_routes

import (
	"github.com/Barfer-herni/raw-barfer-sub000/controllers/cms/expense_controller"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

func SetupExpenseRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	expenses.Use(middleware.AdminAuthMiddleware())

	expenses.GET("",
		middleware.RequirePermission(models.StaticPermission("expenses:view")),
		expense_controller.GetExpenses,
	)

	// ════════════════════════════════════════════════════════════
	// Write Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	write := expenses.Group("")
	write.Use(middleware.RequirePermission(models.StaticPermission("expenses:manage")))
	write.Use(middleware.ActivityLoggingMiddleware())
	{
		write.POST("", expense_controller.CreateExpense)
		write.PATCH("/:id", expense_controller.UpdateExpense)
		write.DELETE("/:id", expense_controller.DeleteExpense)
	}
}
