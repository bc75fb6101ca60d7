package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"homeshow/config"
)

const (
	// MaxAudioSize caps caller uploads.
	MaxAudioSize     = 5 * 1024 * 1024
	AllowedExtension = ".wav"
)

// STTHandler transcribes a short caller audio clip so text channels can
// accept voice input. Expects 16kHz mono LINEAR16 WAV.
func STTHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != AllowedExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected %s, got %s", AllowedExtension, ext),
		})
		return
	}

	audioData, err := io.ReadAll(io.LimitReader(file, MaxAudioSize))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read audio file",
			"details": err.Error(),
		})
		return
	}

	ctx := context.Background()
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to initialize speech client",
			"details": err.Error(),
		})
		return
	}
	defer client.Close()

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	}

	resp, err := client.Recognize(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "speech recognition failed",
			"details": err.Error(),
		})
		return
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"transcription": strings.TrimSpace(transcript.String()),
	})
}
