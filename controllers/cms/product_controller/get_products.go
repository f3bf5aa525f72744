package product_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProducts godoc
// @Summary Get products (CMS)
// @Description List catalog products, optionally filtered by category or order type
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "Filter by category"
// @Param type query string false "Filter by order type" Enums(retail,wholesale)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	log.Printf("[admin.products] start")

	filter := bson.M{}
	if categoryID := c.Query("category_id"); categoryID != "" {
		objectID, err := parseObjectID(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
			return
		}
		filter["categoryId"] = objectID
	}
	if orderType := strings.TrimSpace(strings.ToLower(c.Query("type"))); orderType != "" {
		filter["orderType"] = orderType
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cursor, err := config.Products().Find(ctx, filter, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		log.Printf("[admin.products] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("[admin.products] ERROR decode err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	log.Printf("[admin.products] respond 200 count=%d", len(products))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved successfully", products))
}
