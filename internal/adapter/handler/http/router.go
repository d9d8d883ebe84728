package http

import (
	"net/http"

	"github.com/bikeguard/backend/internal/config"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	verifier ports.CredentialVerifier,
	logger ports.LoggerPort,
	authHandler *AuthHandler,
	bikeHandler *BikeHandler,
	theftHandler *TheftReportHandler,
	alertHandler *AlertHandler,
	securityAlertHandler *SecurityAlertHandler,
	contactHandler *ContactHandler,
	settingsHandler *SettingsHandler,
	telemetryHandler *TelemetryHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(RequestIDMiddleware())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Auth routes; no session required
	api.GET("/oauth/google/redirect_url", authHandler.GetOAuthRedirectURL)
	api.POST("/sessions", authHandler.CreateSession)
	api.GET("/logout", authHandler.Logout)

	// Device routes; the token arrives in the request body
	api.POST("/alert", alertHandler.CreateAlert)
	api.POST("/security-alert", securityAlertHandler.CreateAlert)
	api.POST("/sensor-data", telemetryHandler.IngestSensorData)

	// User routes behind the session middleware
	user := api.Group("")
	user.Use(AuthMiddleware(verifier, logger))
	{
		user.GET("/users/me", authHandler.GetCurrentUser)

		user.GET("/profile", settingsHandler.GetProfile)
		user.PUT("/profile", settingsHandler.UpdateProfile)

		user.POST("/bikes", bikeHandler.CreateBike)
		user.GET("/bikes", bikeHandler.GetBikes)
		user.GET("/bikes/:id", bikeHandler.GetBike)
		user.PUT("/bikes/:id", bikeHandler.UpdateBike)
		user.PUT("/bikes/:id/stolen", bikeHandler.SetStolen)
		user.DELETE("/bikes/:id", bikeHandler.DeleteBike)

		user.POST("/theft-reports", theftHandler.CreateReport)
		user.GET("/theft-reports", theftHandler.GetReports)
		user.PUT("/theft-reports/:id", theftHandler.UpdateStatus)

		user.GET("/alerts", alertHandler.GetAlerts)
		user.PUT("/alerts/:id/resolve", alertHandler.ResolveAlert)

		user.GET("/security-alerts", securityAlertHandler.GetAlerts)
		user.PUT("/security-alerts/:id/resolve", securityAlertHandler.ResolveAlert)

		user.POST("/emergency-contacts", contactHandler.CreateContact)
		user.GET("/emergency-contacts", contactHandler.GetContacts)
		user.PUT("/emergency-contacts/:id", contactHandler.UpdateContact)
		user.DELETE("/emergency-contacts/:id", contactHandler.DeleteContact)

		user.GET("/system-settings", settingsHandler.GetSettings)
		user.PUT("/system-settings", settingsHandler.UpdateSettings)

		user.GET("/live-data", telemetryHandler.GetLiveData)
		user.GET("/dashboard-stats", telemetryHandler.GetDashboardStats)
	}

	return &Router{router: router}, nil
}

// Server wraps the engine in an http.Server so the caller can drain it
// with Shutdown instead of killing in-flight requests.
func (r *Router) Server(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: r.router,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
