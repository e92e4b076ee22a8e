package booking

import (
	"context"
	"strings"
	"time"

	"cleanmaster/models"

	"go.uber.org/zap"
)

// Catalog returns the offerable services, seeding the collection on first run.
func (s *DefaultBookingService) Catalog(ctx context.Context) ([]models.Service, error) {
	return s.CatalogRepo.SeedIfEmpty(ctx)
}

// BuildLineItem loads the catalog and runs AddService with the configured
// minimum area.
func (s *DefaultBookingService) BuildLineItem(ctx context.Context, items []models.LineItem, serviceID, rawQuantity string) (models.LineItem, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return models.LineItem{}, err
	}
	return AddService(catalog, items, serviceID, rawQuantity, s.MinimumArea)
}

// Quote computes the aggregate quote with the configured rates.
func (s *DefaultBookingService) Quote(items []models.LineItem, method models.PaymentMethod) models.Quote {
	return ComputeQuote(items, method, s.DiscountRate, s.AdvanceRate)
}

// Submit validates the assembled form state, freezes the price snapshot onto
// a canonical booking record, persists it, and remembers the customer phone
// for the submitting device. Validation is fail-fast and happens before the
// repository is touched.
func (s *DefaultBookingService) Submit(ctx context.Context, input SubmissionInput) (*models.Booking, error) {
	if len(input.Services) == 0 {
		return nil, newValidationError(CodeEmptyCart, "اختر خدمة واحدة على الأقل")
	}
	for _, field := range []string{input.CustomerName, input.Phone, input.Address, input.Date, input.Time} {
		if strings.TrimSpace(field) == "" {
			return nil, newValidationError(CodeMissingRequiredField, "أكمل البيانات المطلوبة (*)")
		}
	}
	if input.PaymentMethod == models.PaymentElectronic && input.PaymentProof == nil {
		return nil, newValidationError(CodeMissingPaymentProof, "ارفع إثبات الدفع أولاً")
	}

	now := time.Now()
	quote := s.Quote(input.Services, input.PaymentMethod)

	booking := models.Booking{
		Ref:            NewBookingRef(now),
		Timestamp:      now,
		Status:         models.StatusNew,
		Services:       input.Services,
		PaymentMethod:  input.PaymentMethod,
		CustomerName:   input.CustomerName,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		Date:           input.Date,
		Time:           input.Time,
		Notes:          input.Notes,
		Location:       input.Location,
		Photos:         input.Photos,
		PaymentProof:   input.PaymentProof,
		BasePrice:      quote.BasePrice,
		FinalPrice:     quote.NetPrice,
		DiscountAmount: quote.DiscountAmount,
		AdvancePayment: quote.AdvancePayment,
	}

	created, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// The phone used in the most recent successful submission becomes the
	// lookup key for the orders page and the notification diff.
	if s.Phones != nil {
		if err := s.Phones.Remember(ctx, input.DeviceID, input.Phone); err != nil {
			s.logger().Warn("failed to remember device phone", zap.Error(err))
		}
	}

	s.logger().Info("booking created",
		zap.String("bookingId", created.Ref),
		zap.Float64("finalPrice", created.FinalPrice),
		zap.String("paymentMethod", string(created.PaymentMethod)))
	return created, nil
}

// OrdersForDevice lists the bookings made with the device's remembered phone.
func (s *DefaultBookingService) OrdersForDevice(ctx context.Context, deviceID string) ([]models.Booking, error) {
	if s.Phones == nil {
		return nil, nil
	}
	phone, err := s.Phones.Lookup(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if phone == "" {
		return []models.Booking{}, nil
	}
	return s.Repo.GetByPhone(ctx, phone)
}

// AllBookings lists every booking, newest first (admin dashboard).
func (s *DefaultBookingService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateStatus sets a booking's status. Any status may follow any other; a
// transition to confirmed schedules the visit reminder.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, ref string, status models.BookingStatus) (*models.Booking, error) {
	updated, err := s.Repo.UpdateStatus(ctx, ref, status)
	if err != nil {
		return nil, err
	}
	if status == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.Schedule(*updated); err != nil {
			s.logger().Warn("failed to schedule visit reminder",
				zap.String("bookingId", updated.Ref), zap.Error(err))
		}
	}
	return updated, nil
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
