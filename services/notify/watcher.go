package notify

import (
	"context"
	"fmt"
	"sync"

	"cleanmaster/models"

	"go.uber.org/zap"
)

// Watcher diffs successive booking snapshots and publishes at most one event
// per observed change. The first snapshot only primes the baseline.
type Watcher struct {
	Sink   Sink
	Logger *zap.Logger

	// Admin watchers announce new bookings; customer watchers announce
	// status changes for the phone PhoneLookup resolves at diff time.
	// Broadcast watchers announce status changes for every phone, which
	// is how the server feeds per-phone push topics.
	Admin       bool
	Broadcast   bool
	PhoneLookup func(ctx context.Context) string

	mu     sync.Mutex
	prev   []models.Booking
	primed bool
}

// OnSnapshot ingests a complete snapshot sorted newest first. The diff and
// baseline swap happen under the lock; publishing happens after it, so a
// slow push transport never stalls the feed callback.
func (w *Watcher) OnSnapshot(ctx context.Context, snapshot []models.Booking) {
	phone := ""
	if !w.Broadcast && w.PhoneLookup != nil {
		phone = w.PhoneLookup(ctx)
	}

	w.mu.Lock()
	if !w.primed {
		w.prev = snapshot
		w.primed = true
		w.mu.Unlock()
		return
	}

	var events []models.Event
	if w.Admin {
		events = append(events, w.newBookingEvents(snapshot)...)
	}
	if w.Broadcast {
		events = append(events, w.statusChangeEvents(snapshot, "")...)
	} else if phone != "" {
		events = append(events, w.statusChangeEvents(snapshot, phone)...)
	}

	w.prev = snapshot
	w.mu.Unlock()

	for _, event := range events {
		w.publish(ctx, event)
	}
}

func (w *Watcher) newBookingEvents(snapshot []models.Booking) []models.Event {
	if len(snapshot) <= len(w.prev) || len(snapshot) == 0 {
		return nil
	}
	newest := snapshot[0]
	if newest.Status != models.StatusNew {
		return nil
	}
	return []models.Event{{
		Kind:    models.EventNewBooking,
		Ref:     newest.Ref,
		Status:  newest.Status,
		Title:   "حجز جديد 🔔",
		Message: fmt.Sprintf("طلب جديد #%s من %s", newest.Ref, newest.CustomerName),
	}}
}

// statusChangeEvents collects one event per same-ref status change. An empty
// phone matches every booking and targets each booking's own phone.
func (w *Watcher) statusChangeEvents(snapshot []models.Booking, phone string) []models.Event {
	prevByRef := make(map[string]models.BookingStatus, len(w.prev))
	for _, b := range w.prev {
		prevByRef[b.Ref] = b.Status
	}
	var events []models.Event
	for _, b := range snapshot {
		if phone != "" && b.Phone != phone {
			continue
		}
		before, seen := prevByRef[b.Ref]
		if !seen || before == b.Status {
			continue
		}
		events = append(events, models.Event{
			Kind:    models.EventStatusChanged,
			Ref:     b.Ref,
			Phone:   b.Phone,
			Status:  b.Status,
			Title:   "تحديث حالة الطلب",
			Message: statusChangedMessage(b.Ref, b.Status),
		})
	}
	return events
}

func (w *Watcher) publish(ctx context.Context, event models.Event) {
	if w.Sink == nil {
		return
	}
	if err := w.Sink.Publish(ctx, event); err != nil {
		w.logger().Warn("failed to publish notification event",
			zap.String("kind", string(event.Kind)),
			zap.String("bookingId", event.Ref),
			zap.Error(err))
	}
}

func (w *Watcher) logger() *zap.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return zap.L()
}
