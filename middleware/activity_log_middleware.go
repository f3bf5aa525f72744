package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLoggingMiddleware records admin write actions (POST/PATCH/PUT/
// DELETE) into the audit trail after the handler runs.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
		default:
			return
		}

		adminIDStr, ok := GetAdminIDFromContext(c)
		if !ok {
			return
		}
		adminID, err := uuid.Parse(adminIDStr)
		if err != nil {
			return
		}
		adminEmail := c.GetString("adminEmail")

		status := "success"
		if c.Writer.Status() >= http.StatusBadRequest {
			status = "failure"
		}

		changes, _ := json.Marshal(map[string]any{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"code":   c.Writer.Status(),
		})

		entry := models.ActivityLog{
			AdminID:      adminID,
			AdminEmail:   adminEmail,
			Action:       c.Request.Method + " " + c.FullPath(),
			ResourceType: resourceTypeFromPath(c.FullPath()),
			ResourceID:   c.Param("id"),
			Changes:      datatypes.JSON(changes),
			Status:       status,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()
		if err := config.PricingGorm.WithContext(ctx).Create(&entry).Error; err != nil {
			log.Printf("[activity-log] failed to record activity: %v", err)
		}
	}
}

func resourceTypeFromPath(path string) string {
	switch {
	case strings.Contains(path, "/orders"):
		return "order"
	case strings.Contains(path, "/clients"):
		return "client"
	case strings.Contains(path, "/products"):
		return "product"
	case strings.Contains(path, "/categories"):
		return "category"
	case strings.Contains(path, "/expenses"):
		return "expense"
	case strings.Contains(path, "/prices"):
		return "price"
	default:
		return "other"
	}
}
