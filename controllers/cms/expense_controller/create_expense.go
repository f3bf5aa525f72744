package expense_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// CreateExpense godoc
// @Summary Create expense
// @Tags Admin - Expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateExpenseRequest true "Expense"
// @Success 201 {object} models.ApiResponse{data=models.Expense}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/expenses [post]
func CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	metadata := datatypes.JSON([]byte("{}"))
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid metadata"))
			return
		}
		metadata = datatypes.JSON(raw)
	}

	expense := models.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Metadata:    metadata,
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := config.PricingGorm.WithContext(ctx).Create(&expense).Error; err != nil {
		log.Printf("[admin.expense-create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create expense"))
		return
	}

	log.Printf("[admin.expense-create] created id=%s category=%s amount=%.2f", expense.ID, expense.Category, expense.Amount)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Expense created successfully", expense))
}
