package category_controller

import (
	"log"
	"net/http"
	"time"

	catalog_cache "github.com/Barfer-herni/raw-barfer-sub000/cache"
	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateCategory godoc
// @Summary Create catalog category
// @Tags Admin - Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateCategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	now := time.Now().UTC()
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res, err := config.Categories().InsertOne(ctx, category)
	if err != nil {
		log.Printf("[admin.category-create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	category.ID = res.InsertedID.(primitive.ObjectID)

	catalog_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
