package bookingrepo

import (
	"time"

	"cleanmaster/models"
)

// bookingDoc is the stored document shape. Older clients wrote a single
// `service` object instead of the `services` array; this adapter maps any
// recognized legacy shape to the canonical Booking before the rest of the
// system sees it.
type bookingDoc struct {
	Ref       string               `bson:"bookingId"`
	Timestamp time.Time            `bson:"timestamp"`
	Status    models.BookingStatus `bson:"status"`

	Services      []models.LineItem    `bson:"services,omitempty"`
	LegacyService *models.LineItem     `bson:"service,omitempty"`
	PaymentMethod models.PaymentMethod `bson:"paymentMethod"`

	CustomerName string `bson:"customerName"`
	Phone        string `bson:"phone"`
	Email        string `bson:"email,omitempty"`
	Address      string `bson:"address"`
	Date         string `bson:"date"`
	Time         string `bson:"time"`
	Notes        string `bson:"notes,omitempty"`

	Location     *models.GeoLocation `bson:"location,omitempty"`
	Photos       []models.Photo      `bson:"photos,omitempty"`
	PaymentProof *models.Photo       `bson:"paymentProof,omitempty"`

	BasePrice      float64 `bson:"basePrice"`
	FinalPrice     float64 `bson:"finalPrice"`
	DiscountAmount float64 `bson:"discountAmount"`
	AdvancePayment float64 `bson:"advancePayment"`
}

// toBooking normalizes a stored document into the canonical shape. The legacy
// `service` field is folded into the services array, and re-emitted as
// Services[0] so pre-array clients keep working.
func (d bookingDoc) toBooking() models.Booking {
	services := d.Services
	if len(services) == 0 && d.LegacyService != nil {
		services = []models.LineItem{*d.LegacyService}
	}

	status := d.Status
	if status == "" {
		status = models.StatusNew
	}

	b := models.Booking{
		Ref:            d.Ref,
		Timestamp:      d.Timestamp,
		Status:         status,
		Services:       services,
		PaymentMethod:  d.PaymentMethod,
		CustomerName:   d.CustomerName,
		Phone:          d.Phone,
		Email:          d.Email,
		Address:        d.Address,
		Date:           d.Date,
		Time:           d.Time,
		Notes:          d.Notes,
		Location:       d.Location,
		Photos:         d.Photos,
		PaymentProof:   d.PaymentProof,
		BasePrice:      d.BasePrice,
		FinalPrice:     d.FinalPrice,
		DiscountAmount: d.DiscountAmount,
		AdvancePayment: d.AdvancePayment,
	}
	if len(services) > 0 {
		first := services[0]
		b.LegacyService = &first
	}
	return b
}
