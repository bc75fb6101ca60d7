package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"homeshow/models"
)

type fakeAssistant struct {
	reply     string
	err       error
	gotCallID string
	gotText   string
}

func (f *fakeAssistant) ProcessMessage(ctx context.Context, callID, message string) (string, error) {
	f.gotCallID = callID
	f.gotText = message
	return f.reply, f.err
}

func (f *fakeAssistant) EndCall(ctx context.Context, callID string) error { return nil }

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encoding request: %v", err)
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.POST(path, handler)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestVoiceWebhookHandler_StreamsReply(t *testing.T) {
	svc := &fakeAssistant{reply: "I found a charming condo in Logan Square!"}

	w := postJSON(t, VoiceWebhookHandler(svc), "/voice/chat/completions", models.VoiceRequest{
		Model: "gpt-4",
		Call:  models.VoiceCall{ID: "call-77", Type: "inboundPhoneCall"},
		Messages: []models.VoiceMessage{
			{Role: "assistant", Content: "How can I help?"},
			{Role: "user", Content: "Show me condos in Chicago"},
		},
		Timestamp: 1741600000000,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
	if svc.gotCallID != "call-77" || svc.gotText != "Show me condos in Chicago" {
		t.Errorf("assistant got callID=%q text=%q", svc.gotCallID, svc.gotText)
	}

	body := w.Body.String()
	if !strings.HasSuffix(body, "data: [DONE]\n\n") {
		t.Errorf("stream missing DONE sentinel: %q", body)
	}

	first := strings.TrimPrefix(strings.SplitN(body, "\n\n", 2)[0], "data: ")
	var chunk models.VoiceResponse
	if err := json.Unmarshal([]byte(first), &chunk); err != nil {
		t.Fatalf("decoding chunk: %v", err)
	}
	if chunk.ID != "chatcmpl-call-77" || chunk.Object != "chat.completion.chunk" {
		t.Errorf("chunk envelope = %+v", chunk)
	}
	if chunk.Created != 1741600000 {
		t.Errorf("created = %d, want seconds", chunk.Created)
	}
	if len(chunk.Choices) != 1 || chunk.Choices[0].Delta.Content != svc.reply {
		t.Errorf("choices = %+v", chunk.Choices)
	}
	if chunk.Choices[0].FinishReason != "stop" {
		t.Errorf("finish reason = %q", chunk.Choices[0].FinishReason)
	}
}

func TestVoiceWebhookHandler_RequiresCallAndMessages(t *testing.T) {
	w := postJSON(t, VoiceWebhookHandler(&fakeAssistant{}), "/voice/chat/completions", models.VoiceRequest{
		Model: "gpt-4",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestVoiceWebhookHandler_AssistantFailure(t *testing.T) {
	svc := &fakeAssistant{err: errors.New("gemini unavailable")}
	w := postJSON(t, VoiceWebhookHandler(svc), "/voice/chat/completions", models.VoiceRequest{
		Call:     models.VoiceCall{ID: "call-1"},
		Messages: []models.VoiceMessage{{Role: "user", Content: "hi"}},
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestChatHandler_GeneratesCallID(t *testing.T) {
	svc := &fakeAssistant{reply: "May I know your name?"}

	w := postJSON(t, ChatHandler(svc), "/chat", models.ChatRequest{Message: "Hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.CallID == "" {
		t.Error("expected a generated callId for a fresh session")
	}
	if resp.Reply != "May I know your name?" {
		t.Errorf("reply = %q", resp.Reply)
	}
}

func TestChatHandler_RequiresMessage(t *testing.T) {
	w := postJSON(t, ChatHandler(&fakeAssistant{}), "/chat", models.ChatRequest{CallID: "call-1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
