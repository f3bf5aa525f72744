package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/Barfer-herni/raw-barfer-sub000/utils"
	"github.com/gin-gonic/gin"
)

// AdminLogin godoc
// @Summary Admin login
// @Description Verifies credentials, issues a JWT, records a session row and sets the admin_token cookie
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param body body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/auth/login [post]
func AdminLogin(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	var admin models.Admin
	if err := config.PricingGorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&admin).Error; err != nil {
		log.Printf("[admin.login] unknown email=%s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if admin.Status != "active" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account is not active"))
		return
	}

	credentials := services.GetCredentialService()
	if !credentials.VerifyPassword(admin.PasswordHash, req.Password) {
		log.Printf("[admin.login] bad password email=%s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, expiresAt, err := utils.GenerateAdminJWT(admin.ID, admin.Email, admin.Role, admin.Permissions)
	if err != nil {
		log.Printf("[admin.login] ERROR token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	tokenHash := credentials.HashToken(token)
	if err := services.GetAdminSessionService().CreateSession(ctx, admin.ID, tokenHash, c.ClientIP(), c.Request.UserAgent(), expiresAt); err != nil {
		log.Printf("[admin.login] ERROR session err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	now := time.Now()
	admin.LastLoginAt = &now
	if err := config.PricingGorm.WithContext(ctx).
		Model(&models.Admin{}).
		Where("id = ?", admin.ID).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[admin.login] failed to record last login: %v", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, int(time.Until(expiresAt).Seconds()), "/", "", false, true)

	log.Printf("[admin.login] respond 200 email=%s role=%s", admin.Email, admin.Role)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Token: token,
		Admin: admin,
	}))
}
