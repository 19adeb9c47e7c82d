package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uasplan/uplan-backend-go/internal/config"
	"github.com/uasplan/uplan-backend-go/internal/handler"
	"github.com/uasplan/uplan-backend-go/internal/middleware"
	"github.com/uasplan/uplan-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Permissive CORS; the map frontend is served from another origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Uplan backend is running",
		})
	})

	uplanHandler := handler.NewUplanHandler(service.NewUplanService(), cfg.Generator)

	api := r.Group("/api/v1")
	{
		uplans := api.Group("/uplans")
		{
			uplans.POST("/generate", uplanHandler.GenerateUplan)
			uplans.GET("/defaults", uplanHandler.GetDefaults)
		}

		volumes := api.Group("/volumes")
		{
			volumes.POST("/preview", uplanHandler.PreviewVolumes)
		}
	}

	return r
}
