package handlers

import (
	"net/http"

	"fleetrecord/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "transport record backend running"})
}

func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}
	var count int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM vehicles").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "vehicles_in_db": count})
}
