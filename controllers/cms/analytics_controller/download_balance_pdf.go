package analytics_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Barfer-herni/raw-barfer-sub000/config"
	"github.com/Barfer-herni/raw-barfer-sub000/models"
	"github.com/Barfer-herni/raw-barfer-sub000/services"
	"github.com/gin-gonic/gin"
)

// DownloadBalancePDF godoc
// @Summary Download balance sheet PDF
// @Description Generate and download the monthly balance sheet as a PDF
// @Tags Admin - Analytics
// @Produce octet-stream
// @Security BearerAuth
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/analytics/balance/pdf [get]
func DownloadBalancePDF(c *gin.Context) {
	log.Printf("[admin.analytics-balance-pdf] start")

	from, to, ok := parsePeriod(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date range"))
		return
	}

	ctx, cancel := config.WithRequestTimeout(c.Request.Context())
	defer cancel()

	sheet, err := services.NewBalanceService(services.NewOrderStore()).GetBalanceSheet(ctx, from, to)
	if err != nil {
		log.Printf("[admin.analytics-balance-pdf] ERROR balance err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load analytics"))
		return
	}

	periodLabel := fmt.Sprintf("%s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	pdfBuffer, err := services.GenerateBalancePDF(sheet, periodLabel)
	if err != nil {
		log.Printf("[admin.analytics-balance-pdf] ERROR pdf err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	filename := fmt.Sprintf("balance-%s.pdf", to.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.analytics-balance-pdf] respond 200 bytes=%d", pdfBuffer.Len())
}
