package client_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetClientCategoriesStats godoc
// @Summary Get client category counts
// @Description Counts-only categorization stats; grouping is pushed down to the order store so no line items cross the wire
// @Tags Admin - Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ClientCategoriesStats}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/clients/categories/stats [get]
func GetClientCategoriesStats(c *gin.Context) {
	log.Printf("[admin.clients-categories-stats] start")

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	stats, err := services.NewClientAnalyticsService(services.NewOrderStore()).
		GetClientCategoriesStats(ctx)
	if err != nil {
		log.Printf("[admin.clients-categories-stats] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client category stats retrieved successfully", stats))
}
