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

// GetDeliveryTypeStats godoc
// @Summary Get delivery type breakdown
// @Description Delivered orders grouped by delivery type and order type, aggregated in the database
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.DeliveryTypeStat}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/delivery-types [get]
func GetDeliveryTypeStats(c *gin.Context) {
	log.Printf("[admin.analytics-delivery-types] start")

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	stats, err := services.NewBalanceService(services.NewOrderStore()).GetDeliveryTypeStats(ctx)
	if err != nil {
		log.Printf("[admin.analytics-delivery-types] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery type stats retrieved successfully", stats))
}
