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

// GetClientCategorization godoc
// @Summary Get full client categorization
// @Description Full-population behavior and spending categorization for the dashboard summary. Recomputed from current order history on every call.
// @Tags Admin - Clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ClientAnalytics}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/clients/categorization [get]
func GetClientCategorization(c *gin.Context) {
	log.Printf("[admin.clients-categorization] start")

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	analytics, err := services.NewClientAnalyticsService(services.NewOrderStore()).
		GetClientCategorization(ctx)
	if err != nil {
		log.Printf("[admin.clients-categorization] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.clients-categorization] respond 200 clients=%d", analytics.TotalClients)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Client categorization retrieved successfully", analytics))
}
