package chat

import (
	"context"
	"fmt"
	"strings"

	"cleanmaster/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiModel adapts the Gemini SDK to the Model interface. Tool calls come
// back as function-call parts; everything else is concatenated into Text.
type GeminiModel struct {
	model *genai.GenerativeModel
}

func NewGeminiModel(apiKey string) (*GeminiModel, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	model.Tools = []*genai.Tool{{FunctionDeclarations: assistantTools()}}
	return &GeminiModel{model: model}, nil
}

func assistantTools() []*genai.FunctionDeclaration {
	simple := func(name, description string) *genai.FunctionDeclaration {
		return &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		}
	}
	return []*genai.FunctionDeclaration{
		simple("show_services", "Show services list"),
		simple("request_date_time", "Show date picker"),
		simple("request_location", "Show location button (Optional GPS)"),
		simple("request_place_photos", "Show photo uploader"),
		simple("request_payment", "Show payment options"),
		simple("request_payment_proof", "Show proof uploader"),
		{
			Name:        "finalize_booking",
			Description: "Save booking",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"customerName": {Type: genai.TypeString},
					"phone":        {Type: genai.TypeString},
					"address":      {Type: genai.TypeString},
					"notes":        {Type: genai.TypeString},
				},
				Required: []string{"customerName", "phone"},
			},
		},
	}
}

func (g *GeminiModel) Send(ctx context.Context, system string, history []models.ChatTurn, userText string) (*ModelReply, error) {
	model := g.sessionModel(system)

	session := model.StartChat()
	session.History = make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		session.History = append(session.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(userText))
	if err != nil {
		return nil, fmt.Errorf("gemini send error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return &ModelReply{}, nil
	}

	var reply ModelReply
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			sb.WriteString(string(p))
		case genai.FunctionCall:
			reply.Calls = append(reply.Calls, ToolCall{Name: p.Name, Args: p.Args})
		}
	}
	reply.Text = sb.String()
	return &reply, nil
}

// sessionModel returns a per-turn copy of the base model carrying this
// turn's system instruction. The shared base is never written, so
// concurrent turns cannot race on it or see each other's session context.
func (g *GeminiModel) sessionModel(system string) *genai.GenerativeModel {
	model := *g.model
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	return &model
}
