package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

// CreateProduct godoc
// @Summary Create product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	categoryID, err := parseObjectID(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Options:     req.Options,
		OrderType:   req.OrderType,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	res, err := config.Products().InsertOne(ctx, product)
	if err != nil {
		log.Printf("[admin.product-create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	log.Printf("[admin.product-create] respond 201 id=%s", product.ID.Hex())

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
