package handlers

import (
	listingRepo "homeshow/database/repository/listing"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ListingRepo listingRepo.ListingRepository

	// Conversation endpoints
	ChatHandler         gin.HandlerFunc
	EndChatHandler      gin.HandlerFunc
	VoiceWebhookHandler gin.HandlerFunc
	STTHandler          gin.HandlerFunc

	// Booking endpoints
	GetAvailabilityHandler gin.HandlerFunc
	ScheduleShowingHandler gin.HandlerFunc

	// Listing endpoints
	RecommendHandler  gin.HandlerFunc
	GetListingHandler gin.HandlerFunc
}
