package handlers

import (
	"net/http"
	"strings"

	"fleetrecord/internal/http/middleware"
	"fleetrecord/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/dashboard
func GetDashboard(c *gin.Context) {
	svc := services.ReportService{Store: store(), RequestID: middleware.GetRequestID(c)}
	sum, err := svc.Dashboard()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /api/reports/monthly
func GetMonthlyReport(c *gin.Context) {
	svc := services.ReportService{Store: store(), RequestID: middleware.GetRequestID(c)}
	aggs, err := svc.MonthlyReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, aggs)
}

// GET /api/reports/monthly/pdf
func GetMonthlyReportPDF(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	aggs, err := services.ReportService{Store: store(), RequestID: reqID}.MonthlyReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	data, filename, err := services.ExportService{RequestID: reqID}.MonthlyPDF(aggs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/reports/service-alerts
func GetServiceAlerts(c *gin.Context) {
	svc := services.ReportService{Store: store(), RequestID: middleware.GetRequestID(c)}
	due, err := svc.ServiceAlertReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, due)
}

// GET /api/reports/usage/export?format=csv|xlsx&company=&vehicleId=&user=
func ExportUsage(c *gin.Context) {
	reqID := middleware.GetRequestID(c)
	trips, err := services.UsageService{Store: store(), RequestID: reqID}.ListTrips(services.UsageFilter{
		Company:   strings.TrimSpace(c.Query("company")),
		VehicleID: strings.TrimSpace(c.Query("vehicleId")),
		User:      strings.TrimSpace(c.Query("user")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	exporter := services.ExportService{RequestID: reqID}
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	switch format {
	case "", "csv":
		data, filename, err := exporter.UsageCSV(trips)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "xlsx", "excel":
		data, filename, err := exporter.UsageExcel(trips)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
	}
}
