package booking

import (
	"context"

	"cleanmaster/database/repository/bookingrepo"
	"cleanmaster/database/repository/catalogrepo"
	"cleanmaster/models"

	"go.uber.org/zap"
)

// SubmissionInput is the assembled form/chat state handed to Submit.
type SubmissionInput struct {
	Services      []models.LineItem
	PaymentMethod models.PaymentMethod
	CustomerName  string
	Phone         string
	Email         string
	Address       string
	Date          string
	Time          string
	Notes         string
	Location      *models.GeoLocation
	Photos        []models.Photo
	PaymentProof  *models.Photo
	DeviceID      string
}

// VisitReminderScheduler schedules a visit reminder for a confirmed booking.
type VisitReminderScheduler interface {
	Schedule(booking models.Booking) error
}

// BookingService is the application-facing API around the quote engine and
// the booking repository.
type BookingService interface {
	Catalog(ctx context.Context) ([]models.Service, error)
	BuildLineItem(ctx context.Context, items []models.LineItem, serviceID, rawQuantity string) (models.LineItem, error)
	Quote(items []models.LineItem, method models.PaymentMethod) models.Quote
	Submit(ctx context.Context, input SubmissionInput) (*models.Booking, error)
	OrdersForDevice(ctx context.Context, deviceID string) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, ref string, status models.BookingStatus) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingrepo.BookingRepository
	CatalogRepo  catalogrepo.CatalogRepository
	Phones       PhoneMemory
	Reminders    VisitReminderScheduler // optional
	MinimumArea  int
	DiscountRate float64
	AdvanceRate  float64
	Logger       *zap.Logger
}
