package chat

import (
	"context"
	"strings"
	"testing"

	"cleanmaster/models"
	"cleanmaster/services/booking"
)

type memoryStore struct {
	sessions map[string]*models.ChatContext
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]*models.ChatContext{}}
}

func (s *memoryStore) Get(ctx context.Context, sessionID string) (*models.ChatContext, error) {
	if c, ok := s.sessions[sessionID]; ok {
		copied := *c
		return &copied, nil
	}
	return &models.ChatContext{}, nil
}

func (s *memoryStore) Set(ctx context.Context, sessionID string, chatCtx *models.ChatContext) error {
	copied := *chatCtx
	s.sessions[sessionID] = &copied
	return nil
}

func (s *memoryStore) Clear(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type scriptedModel struct {
	reply      *ModelReply
	calls      int
	sawHistory []models.ChatTurn
}

func (m *scriptedModel) Send(ctx context.Context, system string, history []models.ChatTurn, userText string) (*ModelReply, error) {
	m.calls++
	m.sawHistory = history
	if m.reply == nil {
		return &ModelReply{Text: "تمام ✨"}, nil
	}
	return m.reply, nil
}

type fakeBookingService struct {
	catalog   []models.Service
	submitted []booking.SubmissionInput
	submitErr error
}

func (f *fakeBookingService) Catalog(ctx context.Context) ([]models.Service, error) {
	return f.catalog, nil
}

func (f *fakeBookingService) BuildLineItem(ctx context.Context, items []models.LineItem, serviceID, rawQuantity string) (models.LineItem, error) {
	return booking.AddService(f.catalog, items, serviceID, rawQuantity, 100)
}

func (f *fakeBookingService) Quote(items []models.LineItem, method models.PaymentMethod) models.Quote {
	return booking.ComputeQuote(items, method, 0.10, 0.25)
}

func (f *fakeBookingService) Submit(ctx context.Context, input booking.SubmissionInput) (*models.Booking, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, input)
	q := f.Quote(input.Services, input.PaymentMethod)
	return &models.Booking{
		Ref:            "CM260901-TEST",
		Status:         models.StatusNew,
		Services:       input.Services,
		PaymentMethod:  input.PaymentMethod,
		CustomerName:   input.CustomerName,
		Phone:          input.Phone,
		Address:        input.Address,
		Date:           input.Date,
		Time:           input.Time,
		BasePrice:      q.BasePrice,
		FinalPrice:     q.NetPrice,
		DiscountAmount: q.DiscountAmount,
		AdvancePayment: q.AdvancePayment,
	}, nil
}

func (f *fakeBookingService) OrdersForDevice(ctx context.Context, deviceID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, ref string, status models.BookingStatus) (*models.Booking, error) {
	return nil, nil
}

func newTestAssistant(model Model, store ContextStore, svc booking.BookingService) *DefaultAssistantService {
	return &DefaultAssistantService{
		Store:                store,
		Model:                model,
		Booking:              svc,
		PaymentAccountNumber: "01013373634",
		Invoice: booking.InvoiceConfig{
			DiscountPercentage: 10,
			AdvancePercentage:  25,
			WhatsAppNumber:     "201013373634",
		},
	}
}

var chatCatalog = []models.Service{
	{ID: "mosque_carpets", Name: "غسيل سجاد المساجد 🕌", Price: 7, Type: models.PricingPerMeter},
}

func TestConverseAccumulatesWidgetState(t *testing.T) {
	store := newMemoryStore()
	model := &scriptedModel{}
	svc := &fakeBookingService{catalog: chatCatalog}
	assistant := newTestAssistant(model, store, svc)

	resp, err := assistant.Converse(context.Background(), models.ChatRequest{
		SessionID: "s1",
		Text:      "ضيف الخدمة دي",
		Update:    &models.ChatUpdate{AddServiceID: "mosque_carpets", Quantity: "150"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("sessionId = %q", resp.SessionID)
	}

	saved := store.sessions["s1"]
	if saved == nil || len(saved.Services) != 1 || saved.Services[0].LineTotal != 1050 {
		t.Fatalf("widget service not folded into context: %+v", saved)
	}
	if len(saved.History) != 2 {
		t.Fatalf("history should hold user and model turns, got %+v", saved.History)
	}
}

func TestConverseWidgetValidationShortCircuits(t *testing.T) {
	store := newMemoryStore()
	model := &scriptedModel{}
	assistant := newTestAssistant(model, store, &fakeBookingService{catalog: chatCatalog})

	resp, err := assistant.Converse(context.Background(), models.ChatRequest{
		SessionID: "s1",
		Update:    &models.ChatUpdate{AddServiceID: "mosque_carpets", Quantity: "50"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Reply, "100") {
		t.Errorf("validation reply should carry the minimum, got %q", resp.Reply)
	}
	if model.calls != 0 {
		t.Error("model must not be consulted when widget input fails validation")
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Error("failed widget input must not persist state")
	}
}

func TestConverseMapsToolCallsToUIComponents(t *testing.T) {
	store := newMemoryStore()
	model := &scriptedModel{reply: &ModelReply{
		Text: "اختار اليوم المناسب 📅",
		Calls: []ToolCall{
			{Name: "request_date_time"},
			{Name: "request_payment"},
		},
	}}
	assistant := newTestAssistant(model, store, &fakeBookingService{catalog: chatCatalog})

	resp, err := assistant.Converse(context.Background(), models.ChatRequest{SessionID: "s1", Text: "اكمل الحجز"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"date-time-picker", "payment-selector"}
	if len(resp.UIComponents) != len(want) {
		t.Fatalf("uiComponents = %v, want %v", resp.UIComponents, want)
	}
	for i := range want {
		if resp.UIComponents[i] != want[i] {
			t.Errorf("uiComponents[%d] = %q, want %q", i, resp.UIComponents[i], want[i])
		}
	}
}

func TestConverseFinalizeSubmitsAndClears(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = &models.ChatContext{
		Services: []models.LineItem{
			{ServiceID: "mosque_carpets", Name: "غسيل سجاد المساجد 🕌", Type: models.PricingPerMeter, UnitPrice: 7, Quantity: 150, LineTotal: 1050},
		},
		Date:          "2026-09-01",
		Time:          "10:00",
		PaymentMethod: models.PaymentCash,
	}
	model := &scriptedModel{reply: &ModelReply{
		Calls: []ToolCall{{
			Name: "finalize_booking",
			Args: map[string]any{
				"customerName": "أحمد",
				"phone":        "01013373634",
				"address":      "التجمع الخامس",
			},
		}},
	}}
	svc := &fakeBookingService{catalog: chatCatalog}
	assistant := newTestAssistant(model, store, svc)

	resp, err := assistant.Converse(context.Background(), models.ChatRequest{SessionID: "s1", DeviceID: "device-1", Text: "اتفقنا"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(svc.submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(svc.submitted))
	}
	input := svc.submitted[0]
	if input.CustomerName != "أحمد" || input.Phone != "01013373634" || input.DeviceID != "device-1" {
		t.Errorf("submission missing finalize args: %+v", input)
	}
	if input.Date != "2026-09-01" || len(input.Services) != 1 {
		t.Errorf("submission missing accumulated context: %+v", input)
	}

	if !resp.IsInvoice || resp.Booking == nil {
		t.Fatalf("finalize response should carry the invoice: %+v", resp)
	}
	if !strings.Contains(resp.Reply, "#CM260901-TEST") {
		t.Errorf("invoice reply missing booking ref:\n%s", resp.Reply)
	}
	if !strings.HasPrefix(resp.WhatsAppURL, "https://wa.me/201013373634?text=") {
		t.Errorf("unexpected whatsapp link: %s", resp.WhatsAppURL)
	}
	if _, ok := store.sessions["s1"]; ok {
		t.Error("finalize should clear the session context")
	}
}

func TestConverseFinalizeValidationFailureKeepsSession(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = &models.ChatContext{
		Services: []models.LineItem{{ServiceID: "mosque_carpets", LineTotal: 1050}},
	}
	model := &scriptedModel{reply: &ModelReply{
		Calls: []ToolCall{{
			Name: "finalize_booking",
			// No date/time accumulated yet; the booking layer rejects this.
			Args: map[string]any{"customerName": "أحمد", "phone": "0101"},
		}},
	}}
	repoBacked := &booking.DefaultBookingService{
		Repo:         nil,
		MinimumArea:  100,
		DiscountRate: 0.10,
		AdvanceRate:  0.25,
	}
	assistant := newTestAssistant(model, store, repoBacked)

	resp, err := assistant.Converse(context.Background(), models.ChatRequest{SessionID: "s1", Text: "خلصنا"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.IsInvoice || resp.Booking != nil {
		t.Fatalf("failed finalize must not produce an invoice: %+v", resp)
	}
	if resp.Reply == "" {
		t.Error("failed finalize should explain what is missing")
	}
	if _, ok := store.sessions["s1"]; !ok {
		t.Error("failed finalize must keep the session context")
	}
}
