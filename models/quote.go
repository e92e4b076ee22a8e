package models

// PaymentMethod selects the pricing branch of a quote.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentElectronic PaymentMethod = "electronic"
)

// Quote is the aggregate pricing result for the current line items and payment
// method. It is transient view-model state: once a booking is submitted the
// numbers are frozen onto the Booking record and the quote is discarded.
type Quote struct {
	BasePrice        float64       `json:"basePrice"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	DiscountAmount   float64       `json:"discountAmount"`
	NetPrice         float64       `json:"finalPrice"`
	AdvancePayment   float64       `json:"advancePayment"`
	RemainingBalance float64       `json:"remainingBalance"`
}
