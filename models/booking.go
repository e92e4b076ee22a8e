package models

import "time"

// BookingStatus is the lifecycle state of a booking. Transitions are
// admin-driven and deliberately unconstrained: any status may follow any other.
type BookingStatus string

const (
	StatusNew        BookingStatus = "new"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the five known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// LineItem is one priced, quantified service selection. It snapshots the
// catalog entry at selection time; LineTotal = UnitPrice * Quantity.
type LineItem struct {
	ServiceID string      `bson:"id" json:"id"`
	Name      string      `bson:"name_ar" json:"name_ar"`
	Type      PricingType `bson:"type" json:"type"`
	UnitPrice float64     `bson:"price" json:"price"`
	Quantity  int         `bson:"quantity" json:"quantity"`
	LineTotal float64     `bson:"totalPrice" json:"totalPrice"`
}

// Photo describes an image hosted by the external image collaborator.
type Photo struct {
	URL       string `bson:"url" json:"url"`
	ThumbURL  string `bson:"thumb" json:"thumb"`
	Title     string `bson:"title" json:"title"`
	DeleteRef string `bson:"delete_url" json:"delete_url"`
}

// GeoLocation is an optional GPS fix attached to a booking.
type GeoLocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Accuracy  float64 `bson:"accuracy" json:"accuracy"`
	MapURL    string  `bson:"url" json:"url"`
}

// Booking is the canonical persisted record of a confirmed service request.
// Price fields are a snapshot of the quote at submission time and are never
// recomputed; only Status (and attachments via the admin) mutate afterwards.
type Booking struct {
	Ref       string        `bson:"bookingId" json:"bookingId"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
	Status    BookingStatus `bson:"status" json:"status"`

	Services      []LineItem    `bson:"services" json:"services"`
	PaymentMethod PaymentMethod `bson:"paymentMethod" json:"paymentMethod"`

	CustomerName string `bson:"customerName" json:"customerName"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	Address      string `bson:"address" json:"address"`
	Date         string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string `bson:"time" json:"time"` // "HH:MM"
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`

	Location     *GeoLocation `bson:"location,omitempty" json:"location,omitempty"`
	Photos       []Photo      `bson:"photos,omitempty" json:"photos,omitempty"`
	PaymentProof *Photo       `bson:"paymentProof,omitempty" json:"paymentProof,omitempty"`

	BasePrice      float64 `bson:"basePrice" json:"basePrice"`
	FinalPrice     float64 `bson:"finalPrice" json:"finalPrice"`
	DiscountAmount float64 `bson:"discountAmount" json:"discountAmount"`
	AdvancePayment float64 `bson:"advancePayment" json:"advancePayment"`

	// LegacyService mirrors Services[0] on reads for clients that predate the
	// services array. Never stored.
	LegacyService *LineItem `bson:"-" json:"service,omitempty"`
}
