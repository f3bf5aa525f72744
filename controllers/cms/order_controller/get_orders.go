package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description Paginated orders table for the back office
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by status" Enums(pending,confirmed,delivered,cancelled)
// @Param type query string false "Filter by order type" Enums(retail,wholesale)
// @Success 200 {object} models.ApiResponse{data=[]models.CMSOrderListRow,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	log.Printf("[admin.orders] start rawQuery=%s", c.Request.URL.RawQuery)

	// ================================
	// Pagination
	// ================================
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	skip := int64((page - 1) * limit)

	// ================================
	// Filters
	// ================================
	filter := bson.M{}
	if status := strings.TrimSpace(strings.ToLower(c.Query("status"))); status != "" {
		switch status {
		case models.OrderStatusPending, models.OrderStatusConfirmed,
			models.OrderStatusDelivered, models.OrderStatusCancelled:
			filter["status"] = status
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status"))
			return
		}
	}
	if orderType := strings.TrimSpace(strings.ToLower(c.Query("type"))); orderType != "" {
		switch orderType {
		case models.OrderTypeRetail, models.OrderTypeWholesale:
			filter["orderType"] = orderType
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order type"))
			return
		}
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	// ================================
	// Count + data
	// ================================
	total, err := config.Orders().CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("[admin.orders] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	limit64 := int64(limit)
	cursor, err := config.Orders().Find(ctx, filter, &options.FindOptions{
		Sort:  bson.M{"createdAt": -1},
		Skip:  &skip,
		Limit: &limit64,
	})
	if err != nil {
		log.Printf("[admin.orders] ERROR data query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Printf("[admin.orders] ERROR decode failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	rows := make([]models.CMSOrderListRow, 0, len(orders))
	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			for _, opt := range item.Options {
				if opt.Quantity > 0 {
					itemCount += opt.Quantity
				} else {
					itemCount++
				}
			}
		}
		rows = append(rows, models.CMSOrderListRow{
			ID:            order.ID.Hex(),
			CustomerName:  strings.TrimSpace(order.User.Name + " " + order.User.LastName),
			CustomerEmail: order.User.Email,
			Total:         order.Total,
			ItemCount:     itemCount,
			PaymentMethod: order.PaymentMethod,
			OrderType:     order.OrderType,
			Status:        order.Status,
			CreatedAt:     order.CreatedAt,
			DeliveryDate:  order.DeliveryDate,
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}

	log.Printf("[admin.orders] respond 200 total=%d page=%d", total, page)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders retrieved successfully", rows, meta))
}
