package routes

import (
	"net/http"
	"time"

	"github.com/Arjun-733/OfferSphere/controllers"
	"github.com/Arjun-733/OfferSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Health reports liveness and when the offer snapshot was last refreshed.
type Health interface {
	LastRefreshed() time.Time
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(health Health) *gin.Engine {
	router := gin.New()

	// Middleware must be registered before the routes it should wrap
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "service": "offer-engine"}
		if last := health.LastRefreshed(); !last.IsZero() {
			status["last_refreshed"] = last.Format(time.RFC3339)
			status["snapshot_age_seconds"] = int(time.Since(last).Seconds())
		} else {
			status["last_refreshed"] = nil
		}
		c.JSON(http.StatusOK, status)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version group
	api := router.Group("/v1")
	{
		offers := api.Group("/offers")
		{
			offers.GET("/active", controllers.GetActiveOffers)
			offers.POST("/refresh", controllers.RefreshOffers)
		}

		products := api.Group("/products")
		{
			products.GET("/:id/offer", controllers.GetBestOffer)
			products.GET("/:id/price", controllers.GetProductPrice)
		}
	}

	return router
}
