package api

import (
	"log"
	stdhttp "net/http"

	"fleetrecord/internal/config"
	h "fleetrecord/internal/http/handlers"
	"fleetrecord/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.Identity([]byte(env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.POST("", middleware.RequireRoles("admin"), h.UpsertVehicle)

		usage := api.Group("/usage")
		usage.GET("", h.GetUsage)
		usage.POST("", middleware.RequireRoles("admin"), h.CreateUsage)

		reports := api.Group("/reports")
		reports.GET("/dashboard", h.GetDashboard)
		reports.GET("/monthly", h.GetMonthlyReport)
		reports.GET("/monthly/pdf", h.GetMonthlyReportPDF)
		reports.GET("/service-alerts", h.GetServiceAlerts)
		reports.GET("/usage/export", h.ExportUsage)

		api.GET("/settings", middleware.RequireRoles("admin"), h.GetSettings)
	}

	return r
}
