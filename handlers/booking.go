package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	listingRepo "homeshow/database/repository/listing"
	"homeshow/models"
	"homeshow/services/matching"
	"homeshow/services/schedule"
	"homeshow/utils"
)

// AvailabilityRequest asks for open showing slots around a stated
// day preference.
type AvailabilityRequest struct {
	Profile            models.CallerProfile `json:"profile"`
	DateTimePreference string               `json:"date_time_preference"`
}

// ShowingRequestBody books a showing for a known listing.
type ShowingRequestBody struct {
	Profile          models.CallerProfile `json:"profile"`
	ListingID        string               `json:"listing_id" binding:"required"`
	SelectedDateTime string               `json:"selected_date_time" binding:"required"`
}

// RecommendRequest wraps the caller profile for direct recommendations.
type RecommendRequest struct {
	Profile models.CallerProfile `json:"profile"`
}

func GetAvailabilityHandler(svc schedule.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		payload, err := svc.GetAvailability(c.Request.Context(), req.Profile, req.DateTimePreference)
		if err != nil {
			utils.GetLogger().Error("availability lookup failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not reach the showing calendar"})
			return
		}

		c.JSON(http.StatusOK, payload)
	}
}

func ScheduleShowingHandler(svc schedule.SchedulingService, repo listingRepo.ListingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ShowingRequestBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		listing, err := repo.GetByID(req.ListingID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found", "listing_id": req.ListingID})
			return
		}

		confirmation, err := svc.ScheduleShowing(c.Request.Context(), req.Profile, *listing, req.SelectedDateTime)
		if errors.Is(err, schedule.ErrUnparsableSelection) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not understand the selected time"})
			return
		}
		if err != nil {
			utils.GetLogger().Error("showing booking failed", zap.String("listingID", req.ListingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule showing"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"confirmation": confirmation})
	}
}

func RecommendHandler(svc matching.MatchingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		listings, problems, err := svc.RecommendProperties(c.Request.Context(), req.Profile)
		if err != nil {
			utils.GetLogger().Error("recommendation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search listings"})
			return
		}
		if len(problems) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"validation_errors": problems})
			return
		}

		c.JSON(http.StatusOK, gin.H{"properties": listings})
	}
}

func GetListingHandler(repo listingRepo.ListingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		listing, err := repo.GetByID(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found", "listing_id": id})
			return
		}
		c.JSON(http.StatusOK, listing)
	}
}
