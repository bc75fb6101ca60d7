package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homeshow/models"
	"homeshow/services/assistant"
	"homeshow/utils"
)

// VoiceWebhookHandler answers the voice platform's chat-completions
// webhook. The reply goes back as a single SSE chunk followed by the
// [DONE] sentinel, which is the envelope the platform expects.
func VoiceWebhookHandler(svc assistant.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		var req models.VoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		if req.Call.ID == "" || len(req.Messages) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "call id and messages are required"})
			return
		}

		userMessage := req.Messages[len(req.Messages)-1].Content

		reply, err := svc.ProcessMessage(c.Request.Context(), req.Call.ID, userMessage)
		if err != nil {
			logger.Error("voice turn failed", zap.String("callID", req.Call.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
			return
		}

		chunk := models.VoiceResponse{
			ID:      "chatcmpl-" + req.Call.ID,
			Object:  "chat.completion.chunk",
			Created: req.Timestamp / 1000,
			Model:   req.Model,
			Choices: []models.VoiceChoice{{
				Delta:        models.VoiceChoiceDelta{Content: reply},
				Index:        0,
				FinishReason: "stop",
			}},
		}

		body, err := json.Marshal(chunk)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode response"})
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)

		fmt.Fprintf(c.Writer, "data: %s\n\n", body)
		fmt.Fprint(c.Writer, "data: [DONE]\n\n")
		c.Writer.Flush()
	}
}
