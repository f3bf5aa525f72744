package analytics_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetSalesByCategory godoc
// @Summary Get sales by product family
// @Description Revenue, units and estimated weight per product family (BIG DOG, HUESOS, PERRO, GATO, ...)
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.CategorySalesStat}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/sales-by-category [get]
func GetSalesByCategory(c *gin.Context) {
	log.Printf("[admin.analytics-sales-by-category] start")

	from, to, ok := parsePeriod(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date range"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	stats, err := services.NewBalanceService(services.NewOrderStore()).GetSalesByCategory(ctx, from, to)
	if err != nil {
		log.Printf("[admin.analytics-sales-by-category] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.analytics-sales-by-category] respond 200 families=%d", len(stats))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by category retrieved successfully", stats))
}
