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

// GetClientsPaginated godoc
// @Summary Get clients (CMS)
// @Description Paginated client table with behavior/spending categories and WhatsApp-contact overlay
// @Tags Admin - Clients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(20)
// @Param category query string false "Category filter"
// @Param type query string false "Category axis" Enums(behavior,spending)
// @Param visibility query string false "Visibility filter" Enums(all,hidden,visible)
// @Param sort_by query string false "Sort key" Enums(totalSpent,totalOrders,lastOrder)
// @Param sort_order query string false "Sort order" Enums(asc,desc)
// @Success 200 {object} models.ApiResponse{data=models.PaginatedClientsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/clients [get]
func GetClientsPaginated(c *gin.Context) {
	log.Printf("[admin.clients] start rawQuery=%s", c.Request.URL.RawQuery)

	var opts models.ClientsQueryOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	resp, err := services.NewClientAnalyticsService(services.NewOrderStore()).
		GetClientsPaginated(ctx, opts)
	if err != nil {
		log.Printf("[admin.clients] ERROR paginated query err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.clients] respond 200 total=%d pages=%d", resp.TotalCount, resp.TotalPages)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Clients retrieved successfully", resp))
}
