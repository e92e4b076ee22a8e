package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"cleanmaster/models"
	"cleanmaster/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAssistantService runs the guided-booking flow: it merges widget
// input into the session context, consults the model, maps tool calls to UI
// components, and finalizes the booking through the booking service.
type DefaultAssistantService struct {
	Store   ContextStore
	Model   Model
	Booking booking.BookingService

	PaymentAccountNumber string
	Invoice              booking.InvoiceConfig
	Logger               *zap.Logger
}

var uiComponents = map[string]string{
	"show_services":         "service-selector",
	"request_date_time":     "date-time-picker",
	"request_location":      "location-requester",
	"request_place_photos":  "image-uploader:place",
	"request_payment":       "payment-selector",
	"request_payment_proof": "image-uploader:proof",
}

func (s *DefaultAssistantService) Converse(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	chatCtx, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load chat context: %w", err)
	}

	if req.Update != nil {
		if reply, err := s.applyUpdate(ctx, chatCtx, req.Update); err != nil {
			return nil, err
		} else if reply != "" {
			// Widget input failed validation; answer directly, keep the
			// session as it was.
			return &models.ChatResponse{SessionID: sessionID, Reply: reply}, nil
		}
	}

	reply, err := s.Model.Send(ctx, s.systemInstruction(chatCtx), chatCtx.History, req.Text)
	if err != nil {
		return nil, fmt.Errorf("assistant turn: %w", err)
	}

	resp := &models.ChatResponse{SessionID: sessionID, Reply: reply.Text}
	finalized := false
	for _, call := range reply.Calls {
		if component, ok := uiComponents[call.Name]; ok {
			resp.UIComponents = append(resp.UIComponents, component)
			continue
		}
		if call.Name == "finalize_booking" {
			if done, msg := s.finalize(ctx, sessionID, chatCtx, req, call.Args, resp); done {
				finalized = true
			} else if msg != "" {
				resp.Reply = msg
			}
		}
	}

	if !finalized {
		chatCtx.History = append(chatCtx.History, models.ChatTurn{Role: "user", Text: req.Text})
		if reply.Text != "" {
			chatCtx.History = append(chatCtx.History, models.ChatTurn{Role: "model", Text: reply.Text})
		}
		if err := s.Store.Set(ctx, sessionID, chatCtx); err != nil {
			return nil, fmt.Errorf("save chat context: %w", err)
		}
	}
	return resp, nil
}

// applyUpdate folds widget-collected state into the session context. A
// non-empty return string is a validation message to show the user.
func (s *DefaultAssistantService) applyUpdate(ctx context.Context, chatCtx *models.ChatContext, u *models.ChatUpdate) (string, error) {
	if u.AddServiceID != "" {
		item, err := s.Booking.BuildLineItem(ctx, chatCtx.Services, u.AddServiceID, u.Quantity)
		if err != nil {
			if ve, ok := booking.AsValidation(err); ok {
				return ve.Message, nil
			}
			return "", err
		}
		chatCtx.Services = append(chatCtx.Services, item)
	}
	if u.Date != "" {
		chatCtx.Date = u.Date
	}
	if u.Time != "" {
		chatCtx.Time = u.Time
	}
	if u.Payment != "" {
		chatCtx.PaymentMethod = u.Payment
	}
	if u.Location != nil {
		chatCtx.Location = u.Location
	}
	if len(u.Photos) > 0 {
		chatCtx.Photos = append(chatCtx.Photos, u.Photos...)
	}
	if u.PaymentProof != nil {
		chatCtx.PaymentProof = u.PaymentProof
	}
	return "", nil
}

func (s *DefaultAssistantService) finalize(ctx context.Context, sessionID string, chatCtx *models.ChatContext, req models.ChatRequest, args map[string]any, resp *models.ChatResponse) (bool, string) {
	input := booking.SubmissionInput{
		Services:      chatCtx.Services,
		PaymentMethod: chatCtx.PaymentMethod,
		CustomerName:  stringArg(args, "customerName"),
		Phone:         stringArg(args, "phone"),
		Address:       stringArg(args, "address"),
		Notes:         stringArg(args, "notes"),
		Date:          chatCtx.Date,
		Time:          chatCtx.Time,
		Location:      chatCtx.Location,
		Photos:        chatCtx.Photos,
		PaymentProof:  chatCtx.PaymentProof,
		DeviceID:      req.DeviceID,
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}

	created, err := s.Booking.Submit(ctx, input)
	if err != nil {
		if ve, ok := booking.AsValidation(err); ok {
			return false, ve.Message
		}
		s.logger().Error("chat finalize failed", zap.Error(err))
		return false, "حدث خطأ أثناء حفظ الحجز. حاول مرة أخرى."
	}

	invoice := booking.RenderInvoice(*created, s.Invoice)
	resp.Booking = created
	resp.Reply = invoice
	resp.IsInvoice = true
	resp.WhatsAppURL = booking.WhatsAppLink(s.Invoice.WhatsAppNumber, invoice)

	if err := s.Store.Clear(ctx, sessionID); err != nil {
		s.logger().Warn("failed to clear chat context", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return true, ""
}

func (s *DefaultAssistantService) systemInstruction(chatCtx *models.ChatContext) string {
	state, _ := json.Marshal(chatCtx)
	return fmt.Sprintf(`You are "Clean Master Assistant" 🤖.
Your goal: Guide user to book a service using UI TOOLS.
Language: Arabic (Egyptian dialect allowed).
Tone: Friendly, professional, and ALWAYS use Emojis (✨, 🧹, 🏡, ✅, etc) in every response.
Format numbers in bold like **100**.

Company Data:
- Payment Number: **%s** (Supports Instapay & Wallet).
- Electronic Payment Discount: %.0f%%.
- Advance Payment: %.0f%% of the NET amount (after discount).

RULES:
1. Services & Quantity are handled manually by UI now. Focus on the flow AFTER services are confirmed.
2. If user says "Complete Booking", Call 'request_date_time'.
3. Call 'request_location' (For GPS).
4. ADDRESS LOGIC:
   - If user shared GPS (in context.location): Address text is OPTIONAL.
   - If user SKIPPED GPS: Address text is MANDATORY. You must ask for it.
5. Call 'request_place_photos' (Optional).
6. Call 'request_payment'.
7. Payment Logic:
   - If Electronic: State Net Total, Advance Payment, and REMAINING balance. Show number & ask for proof using 'request_payment_proof'.
   - If Cash: State the Total Amount clearly.
8. Call 'finalize_booking' (requires Name, Phone, and Address (if mandatory)).

Current Context: %s`, s.PaymentAccountNumber, s.Invoice.DiscountPercentage, s.Invoice.AdvancePercentage, state)
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func (s *DefaultAssistantService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
