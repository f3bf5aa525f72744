package expense_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UpdateExpense godoc
// @Summary Update expense
// @Tags Admin - Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param body body models.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Expense}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid expense ID"))
		return
	}

	var req models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var expense models.Expense
	if err := config.PricingGorm.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Expense not found"))
		return
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid metadata"))
			return
		}
		expense.Metadata = datatypes.JSON(raw)
	}

	if err := config.PricingGorm.WithContext(ctx).Save(&expense).Error; err != nil {
		log.Printf("[admin.expense-update] ERROR save err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update expense"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Expense updated successfully", expense))
}
