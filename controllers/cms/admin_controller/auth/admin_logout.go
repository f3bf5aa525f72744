package auth

import (
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// AdminLogout godoc
// @Summary Admin logout
// @Description Revokes the active session and clears the admin_token cookie
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /admin/auth/logout [post]
func AdminLogout(c *gin.Context) {
	tokenHash, exists := c.Get("adminTokenHash")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	if err := services.GetAdminSessionService().RevokeSession(ctx, tokenHash.(string)); err != nil {
		log.Printf("[admin.logout] failed to revoke session: %v", err)
	}

	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
