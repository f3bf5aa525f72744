package category_controller

import (
	"log"
	"net/http"

	catalog_cache "github.com/Barfer-herni/raw-barfer-sub000/cache"
	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCategories godoc
// @Summary Get catalog categories
// @Description List catalog categories ordered for display; served from a short-TTL cache
// @Tags Admin - Categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := catalog_cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", cached))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	cursor, err := config.Categories().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		log.Printf("[admin.categories] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		log.Printf("[admin.categories] ERROR decode err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	catalog_cache.SetCategories(categories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories retrieved successfully", categories))
}
