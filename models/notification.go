package models

// EventKind classifies notification events produced by the booking watcher
// and the reminder worker.
type EventKind string

const (
	EventNewBooking    EventKind = "new_booking"    // admin-facing
	EventStatusChanged EventKind = "status_changed" // customer-facing
	EventVisitReminder EventKind = "visit_reminder" // customer-facing, scheduled
)

// Event is one notification to dispatch.
type Event struct {
	Kind    EventKind     `json:"kind"`
	Ref     string        `json:"bookingId"`
	Phone   string        `json:"phone,omitempty"`
	Status  BookingStatus `json:"status,omitempty"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
}

// ReminderPayload is the asynq task body for a scheduled visit reminder.
type ReminderPayload struct {
	Ref   string `json:"bookingId"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}
