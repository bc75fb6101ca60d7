package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"homeshow/models"
	"homeshow/services/assistant"
	"homeshow/utils"
)

// ChatHandler serves one text turn of a conversation. A missing callId
// starts a fresh session.
func ChatHandler(svc assistant.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		callID := req.CallID
		if callID == "" {
			callID = uuid.NewString()
		}

		reply, err := svc.ProcessMessage(c.Request.Context(), callID, req.Message)
		if err != nil {
			logger.Error("chat turn failed", zap.String("callID", callID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
			return
		}

		c.JSON(http.StatusOK, models.ChatResponse{CallID: callID, Reply: reply})
	}
}

// EndChatHandler discards a session's stored transcript.
func EndChatHandler(svc assistant.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		callID := c.Param("callId")
		if callID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "callId is required"})
			return
		}
		if err := svc.EndCall(c.Request.Context(), callID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to end session", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ended"})
	}
}
