package chat

import (
	"context"

	"cleanmaster/models"
)

// AssistantService drives one turn of the guided-booking conversation.
type AssistantService interface {
	Converse(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// ContextStore persists per-session conversation state between turns.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatContext, error)
	Set(ctx context.Context, sessionID string, chatCtx *models.ChatContext) error
	Clear(ctx context.Context, sessionID string) error
}

// Model abstracts the generative backend so the conversation logic can be
// exercised without network calls.
type Model interface {
	Send(ctx context.Context, system string, history []models.ChatTurn, userText string) (*ModelReply, error)
}

// ModelReply is one model turn: free text plus any tool invocations.
type ModelReply struct {
	Text  string
	Calls []ToolCall
}

// ToolCall is a single function call emitted by the model.
type ToolCall struct {
	Name string
	Args map[string]any
}
