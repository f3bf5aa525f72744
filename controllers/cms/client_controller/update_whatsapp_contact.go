package client_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// UpdateWhatsAppContact godoc
// @Summary Update a client's WhatsApp-contact marker
// @Description Stamps the contact timestamp, hides the client from contact lists, or clears the marker. Hiding never deletes order history.
// @Tags Admin - Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UpdateWhatsAppContactRequest true "Contact action"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/clients/whatsapp-contact [patch]
func UpdateWhatsAppContact(c *gin.Context) {
	var req models.UpdateWhatsAppContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	log.Printf("[admin.clients-contact] start action=%s email=%s", req.Action, req.Email)

	var value string
	switch req.Action {
	case "contacted":
		value = time.Now().UTC().Format(time.RFC3339)
	case "hide":
		value = models.WhatsAppHiddenSentinel
	case "show":
		value = ""
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	modified, err := services.NewOrderStore().UpdateWhatsAppContact(ctx, req.Email, value)
	if err != nil {
		log.Printf("[admin.clients-contact] ERROR update err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update contact marker"))
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No orders found for that email"))
		return
	}

	log.Printf("[admin.clients-contact] respond 200 modified=%d", modified)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Contact marker updated", map[string]any{
		"email":    req.Email,
		"action":   req.Action,
		"modified": modified,
	}))
}
