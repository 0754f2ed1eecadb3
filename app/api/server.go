package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware so the browser form can POST from the site origin
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Submission pipelines; registered for any method so the handlers can
	// answer non-POST requests with 405 + Allow, matching the form contract
	r.Any("/api/contact", handler.SubmitContact)
	r.Any("/api/dev-request", handler.SubmitDevRequest)

	// Read-only content collections consumed by the site
	r.GET("/api/projects", handler.GetProjects)
	r.GET("/api/experience", handler.GetExperience)
	r.GET("/api/events", handler.GetEvents)
	r.GET("/api/recognition", handler.GetRecognition)

	// Health endpoint
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Voyagr Portfolio API",
			"description": "Contact and developer-request pipelines plus read-only portfolio content",
			"endpoints": map[string]string{
				"contact":     "/api/contact (POST)",
				"dev_request": "/api/dev-request (POST)",
				"projects":    "/api/projects",
				"experience":  "/api/experience",
				"events":      "/api/events?type=<type>&split=<true|false>",
				"recognition": "/api/recognition",
				"health":      "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
