package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"cleanmaster/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the visit slot the reminder fires.
const reminderLead = 24 * time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues a visit reminder when a booking is
// confirmed.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func (s *AsynqReminderScheduler) Schedule(booking models.Booking) error {
	visit, err := time.ParseInLocation("2006-01-02 15:04", booking.Date+" "+booking.Time, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable visit slot %q %q: %w", booking.Date, booking.Time, err)
	}

	fireAt := visit.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now().Add(time.Minute)
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		Ref:   booking.Ref,
		Phone: booking.Phone,
		Date:  booking.Date,
		Time:  booking.Time,
	}, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for %s: %w", booking.Ref, err)
	}
	return nil
}
