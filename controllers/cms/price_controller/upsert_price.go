package price_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

type upsertPriceRequest struct {
	ProductRef string     `json:"product_ref" binding:"required"`
	OptionName string     `json:"option_name" binding:"required"`
	OrderType  string     `json:"order_type" binding:"required,oneof=retail wholesale"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	ValidFrom  *time.Time `json:"valid_from"`
}

// UpsertPrice godoc
// @Summary Create or update a price row
// @Tags Admin - Prices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body upsertPriceRequest true "Price"
// @Success 200 {object} models.ApiResponse{data=models.Price}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/prices [put]
func UpsertPrice(c *gin.Context) {
	var req upsertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	validFrom := time.Now().UTC()
	if req.ValidFrom != nil {
		validFrom = *req.ValidFrom
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	price, err := services.GetPriceService().UpsertPrice(ctx,
		req.ProductRef, req.OptionName, req.OrderType, req.Amount, validFrom)
	if err != nil {
		log.Printf("[admin.price-upsert] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save price"))
		return
	}

	log.Printf("[admin.price-upsert] saved product=%s option=%s type=%s amount=%.2f",
		req.ProductRef, req.OptionName, req.OrderType, req.Amount)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price saved successfully", price))
}
