package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"homeshow/models"
	"homeshow/utils"
)

const (
	// maxToolRounds bounds how many tool round-trips a single caller
	// message may trigger before the model must answer in text.
	maxToolRounds = 5
	// maxHistoryTurns caps the stored transcript per call.
	maxHistoryTurns = 40
)

// AssistantService drives one conversational turn for a call.
type AssistantService interface {
	ProcessMessage(ctx context.Context, callID, message string) (string, error)
	EndCall(ctx context.Context, callID string) error
}

type GeminiAssistant struct {
	model *genai.GenerativeModel
	store SessionStore
	tools *ToolDispatcher
}

func NewGeminiAssistant(apiKey string, store SessionStore, tools *ToolDispatcher) *GeminiAssistant {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = agentTools()

	return &GeminiAssistant{model: model, store: store, tools: tools}
}

// ProcessMessage loads the call transcript, runs the model with tool
// access until it produces a text reply, and persists the new turns.
func (a *GeminiAssistant) ProcessMessage(ctx context.Context, callID, message string) (string, error) {
	logger := utils.GetLogger().Sugar()

	session, err := a.store.Get(ctx, callID)
	if err != nil {
		return "", fmt.Errorf("load session %s: %w", callID, err)
	}

	cs := a.model.StartChat()
	cs.History = historyToContents(session.History)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var replies []genai.Part
		for _, call := range calls {
			result, err := a.tools.Dispatch(ctx, call)
			if err != nil {
				logger.Warnw("tool call failed", "tool", call.Name, "error", err)
				result = map[string]any{"error": err.Error()}
			}
			replies = append(replies, genai.FunctionResponse{Name: call.Name, Response: result})
		}

		resp, err = cs.SendMessage(ctx, replies...)
		if err != nil {
			return "", fmt.Errorf("gemini tool response error: %w", err)
		}
	}

	reply := responseText(resp)
	if reply == "" {
		reply = "I'm sorry, could you say that again?"
	}

	session.History = append(session.History,
		models.ConversationTurn{Role: "user", Text: message},
		models.ConversationTurn{Role: "model", Text: reply},
	)
	if len(session.History) > maxHistoryTurns {
		session.History = session.History[len(session.History)-maxHistoryTurns:]
	}
	if err := a.store.Set(ctx, callID, session); err != nil {
		logger.Warnw("failed to persist call session", "callID", callID, "error", err)
	}

	return reply, nil
}

func (a *GeminiAssistant) EndCall(ctx context.Context, callID string) error {
	return a.store.Clear(ctx, callID)
}

func historyToContents(turns []models.ConversationTurn) []*genai.Content {
	var contents []*genai.Content
	for _, t := range turns {
		contents = append(contents, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
