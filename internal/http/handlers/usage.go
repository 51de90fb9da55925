package handlers

import (
	"net/http"
	"strings"
	"time"

	"fleetrecord/internal/http/middleware"
	"fleetrecord/internal/services"
	"fleetrecord/internal/utils"

	"github.com/gin-gonic/gin"
)

type usagePayload struct {
	Date      string   `json:"date"`
	VehicleID string   `json:"vehicleId" binding:"required"`
	Company   string   `json:"company"`
	OdoStart  *float64 `json:"odoStart"`
	OdoEnd    *float64 `json:"odoEnd"`
	Purpose   string   `json:"purpose"`
}

// GET /api/usage?company=&vehicleId=&user=
func GetUsage(c *gin.Context) {
	svc := services.UsageService{Store: store(), RequestID: middleware.GetRequestID(c)}
	trips, err := svc.ListTrips(services.UsageFilter{
		Company:   strings.TrimSpace(c.Query("company")),
		VehicleID: strings.TrimSpace(c.Query("vehicleId")),
		User:      strings.TrimSpace(c.Query("user")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// POST /api/usage
func CreateUsage(c *gin.Context) {
	var payload usagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	date := strings.TrimSpace(payload.Date)
	if date == "" {
		date = utils.FormatDate(time.Now())
	} else if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	who, _ := middleware.GetIdentity(c)

	svc := services.UsageService{Store: store(), RequestID: middleware.GetRequestID(c)}
	rec, err := svc.Submit(services.TripSubmission{
		Date:      date,
		VehicleID: payload.VehicleID,
		Company:   payload.Company,
		OdoStart:  payload.OdoStart,
		OdoEnd:    payload.OdoEnd,
		Purpose:   payload.Purpose,
	}, who)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "usage saved", "record": rec})
}
