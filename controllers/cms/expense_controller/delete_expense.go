package expense_controller

import (
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteExpense godoc
// @Summary Delete expense
// @Tags Admin - Expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid expense ID"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res := config.PricingGorm.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("[admin.expense-delete] ERROR delete err=%v", res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete expense"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Expense not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Expense deleted successfully", nil))
}
