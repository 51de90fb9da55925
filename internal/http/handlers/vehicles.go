package handlers

import (
	"net/http"
	"strings"

	"fleetrecord/internal/domain/models"
	"fleetrecord/internal/http/middleware"
	"fleetrecord/internal/services"
	"fleetrecord/internal/utils"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	VehicleID       string  `json:"vehicleId" binding:"required"`
	PlateNo         string  `json:"plateNo" binding:"required"`
	Company         string  `json:"company"`
	Status          string  `json:"status"`
	Odometer        float64 `json:"odometer"`
	LastServiceOdo  float64 `json:"lastServiceOdo"`
	LastServiceDate string  `json:"lastServiceDate"`
	Notes           string  `json:"notes"`
}

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	svc := services.VehicleService{Store: store(), RequestID: middleware.GetRequestID(c)}
	vehicles, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// POST /api/vehicles (admin add/update, keyed by vehicleId)
func UpsertVehicle(c *gin.Context) {
	var payload vehiclePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "detail": err.Error()})
		return
	}

	if strings.TrimSpace(payload.LastServiceDate) != "" {
		if _, err := utils.ParseDate(payload.LastServiceDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lastServiceDate must be YYYY-MM-DD"})
			return
		}
	}

	svc := services.VehicleService{Store: store(), RequestID: middleware.GetRequestID(c)}
	created, err := svc.Upsert(models.Vehicle{
		VehicleID:       payload.VehicleID,
		PlateNo:         payload.PlateNo,
		Company:         strings.TrimSpace(payload.Company),
		Status:          payload.Status,
		Odometer:        payload.Odometer,
		LastServiceOdo:  payload.LastServiceOdo,
		LastServiceDate: strings.TrimSpace(payload.LastServiceDate),
		Notes:           payload.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "vehicle added"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle updated"})
}
