package price_controller

import (
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// GetPrices godoc
// @Summary List price rows
// @Description Current wholesale/retail prices per product option, optionally scoped to one product
// @Tags Admin - Prices
// @Produce json
// @Security BearerAuth
// @Param product_ref query string false "Product ID (hex)"
// @Success 200 {object} models.ApiResponse{data=[]models.Price}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/prices [get]
func GetPrices(c *gin.Context) {
	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	prices, err := services.GetPriceService().ListPrices(ctx, c.Query("product_ref"))
	if err != nil {
		log.Printf("[admin.prices] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch prices"))
		return
	}
	if prices == nil {
		prices = []models.Price{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Prices retrieved successfully", prices))
}
