package analytics_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// parsePeriod reads from/to query params (YYYY-MM-DD) with a trailing
// 12-month default window.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return from, to, false
		}
		to = parsed
	}
	return from, to, true
}

// GetBalanceSheet godoc
// @Summary Get monthly balance sheet
// @Description Monthly revenue (order store) merged with expenses (pricing database)
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.BalanceSheet}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/balance [get]
func GetBalanceSheet(c *gin.Context) {
	log.Printf("[admin.analytics-balance] start")

	from, to, ok := parsePeriod(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date range"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	sheet, err := services.NewBalanceService(services.NewOrderStore()).GetBalanceSheet(ctx, from, to)
	if err != nil {
		log.Printf("[admin.analytics-balance] ERROR err=%v", err)
		if errors.Is(err, services.ErrStoreTimeout) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Analytics query timed out, please retry"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	log.Printf("[admin.analytics-balance] respond 200 months=%d net=%.2f", len(sheet.Rows), sheet.TotalNet)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Balance sheet retrieved successfully", sheet))
}
