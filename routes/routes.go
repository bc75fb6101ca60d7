package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homeshow/handlers"
	"homeshow/middleware"
	"homeshow/utils"
)

// RegisterChatRoutes registers the text conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
		api.DELETE("/:callId", hb.EndChatHandler)
		api.POST("/stt", hb.STTHandler)
	}
}

// RegisterVoiceRoutes registers the voice platform webhook.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/vapi-webhook")
	{
		api.Use(middleware.WebhookAuthMiddleware())
		api.POST("/chat/completions", hb.VoiceWebhookHandler)
	}
}

// RegisterShowingRoutes sets up the endpoints for availability and bookings.
func RegisterShowingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/showings")
	{
		api.POST("/availability", hb.GetAvailabilityHandler)
		api.POST("/schedule", hb.ScheduleShowingHandler)
	}
}

// RegisterListingRoutes sets up the listing lookup endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.POST("/recommend", hb.RecommendHandler)
		api.GET("/:id", hb.GetListingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterVoiceRoutes(r, hb)
	RegisterShowingRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterHealthRoute(r)
}
