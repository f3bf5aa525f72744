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

// GetClientsByCategory godoc
// @Summary Get clients by category (unpaginated)
// @Description Convenience wrapper for export-style views; returns every client matching the category filter
// @Tags Admin - Clients
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param type query string false "Category axis" Enums(behavior,spending)
// @Success 200 {object} models.ApiResponse{data=[]models.ClientRow}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/clients/by-category [get]
func GetClientsByCategory(c *gin.Context) {
	category := c.Query("category")
	categoryType := c.Query("type")

	log.Printf("[admin.clients-by-category] start category=%s type=%s", category, categoryType)

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	rows, err := services.NewClientAnalyticsService(services.NewOrderStore()).
		GetClientsByCategory(ctx, category, categoryType)
	if err != nil {
		log.Printf("[admin.clients-by-category] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.clients-by-category] respond 200 rows=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Clients retrieved successfully", rows))
}
