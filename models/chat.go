package models

// ChatTurn is one persisted dialogue turn ("user" or "model").
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatContext is the assistant's accumulated booking state for one session.
// It mirrors the in-progress form: services picked so far, schedule, payment
// choice and attachments, plus the raw dialogue history replayed to the model.
type ChatContext struct {
	History       []ChatTurn    `json:"history,omitempty"`
	Services      []LineItem    `json:"services,omitempty"`
	Date          string        `json:"date,omitempty"`
	Time          string        `json:"time,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	Location      *GeoLocation  `json:"location,omitempty"`
	Photos        []Photo       `json:"photos,omitempty"`
	PaymentProof  *Photo        `json:"paymentProof,omitempty"`
}

// ChatUpdate carries structured state the chat UI collected through widgets
// (date picker, payment selector, uploader) alongside the user's text.
type ChatUpdate struct {
	AddServiceID string        `json:"addServiceId,omitempty"`
	Quantity     string        `json:"quantity,omitempty"`
	Date         string        `json:"date,omitempty"`
	Time         string        `json:"time,omitempty"`
	Payment      PaymentMethod `json:"paymentMethod,omitempty"`
	Location     *GeoLocation  `json:"location,omitempty"`
	Photos       []Photo       `json:"photos,omitempty"`
	PaymentProof *Photo        `json:"paymentProof,omitempty"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string      `json:"sessionId"`
	DeviceID  string      `json:"deviceId,omitempty"`
	Text      string      `json:"text"`
	Update    *ChatUpdate `json:"update,omitempty"`
}

// ChatResponse is what the chat handler returns to the frontend. UIComponent,
// when set, asks the client to render one of the guided-booking widgets.
type ChatResponse struct {
	SessionID    string   `json:"sessionId"`
	Reply        string   `json:"reply,omitempty"`
	UIComponents []string `json:"uiComponents,omitempty"`
	Booking      *Booking `json:"booking,omitempty"`
	WhatsAppURL  string   `json:"whatsappUrl,omitempty"`
	IsInvoice    bool     `json:"isInvoice,omitempty"`
}
