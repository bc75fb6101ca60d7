package models

// ChatRequest is the chat front end's inbound message.
type ChatRequest struct {
	CallID  string `json:"callId"`
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	CallID string `json:"callId"`
	Reply  string `json:"reply"`
}

// Voice webhook DTOs, shaped like the OpenAI chat-completions envelope the
// voice platform speaks.

type VoiceCall struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type VoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type VoiceRequest struct {
	Model       string         `json:"model"`
	Call        VoiceCall      `json:"call"`
	Messages    []VoiceMessage `json:"messages"`
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
	Timestamp   int64          `json:"timestamp"`
	Stream      bool           `json:"stream"`
}

type VoiceChoiceDelta struct {
	Content string `json:"content"`
}

type VoiceChoice struct {
	Delta        VoiceChoiceDelta `json:"delta"`
	Index        int              `json:"index"`
	FinishReason string           `json:"finish_reason"`
}

type VoiceResponse struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created int64         `json:"created"`
	Model   string        `json:"model"`
	Choices []VoiceChoice `json:"choices"`
}
