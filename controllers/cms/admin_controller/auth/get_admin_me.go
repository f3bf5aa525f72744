package auth

import (
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/middleware"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
)

// GetAdminMe godoc
// @Summary Get authenticated admin
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Admin}
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/auth/me [get]
func GetAdminMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var admin models.Admin
	if err := config.PricingGorm.WithContext(ctx).
		First(&admin, "id = ?", adminID).Error; err != nil {
		log.Printf("[admin.me] ERROR lookup id=%s err=%v", adminID, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved successfully", admin))
}
