package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetQuantityByMonth godoc
// @Summary Get kilograms sold per month
// @Description Estimated product weight sold per month, split retail/wholesale, for chart visualization
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param months query int false "Trailing months" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyQuantityRow}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/quantity-by-month [get]
func GetQuantityByMonth(c *gin.Context) {
	log.Printf("[admin.analytics-quantity] start")

	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	rows, err := services.NewBalanceService(services.NewOrderStore()).GetQuantityByMonth(ctx, months)
	if err != nil {
		log.Printf("[admin.analytics-quantity] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.analytics-quantity] respond 200 months=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity by month retrieved successfully", rows))
}
