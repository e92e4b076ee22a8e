package notify

import (
	"context"
	"fmt"

	"cleanmaster/models"
)

// Sink delivers notification events to their transport (FCM in production,
// an in-memory recorder in tests).
type Sink interface {
	Publish(ctx context.Context, event models.Event) error
}

// Feed delivers complete booking snapshots, newest first, to a subscriber.
// stop tears the subscription down.
type Feed interface {
	Subscribe(onSnapshot func([]models.Booking)) (stop func(), err error)
}

// StatusLabels maps a booking status to its customer-facing Arabic label.
var StatusLabels = map[models.BookingStatus]string{
	models.StatusNew:        "طلب جديد",
	models.StatusConfirmed:  "مؤكد",
	models.StatusInProgress: "قيد التنفيذ",
	models.StatusCompleted:  "مكتمل",
	models.StatusCancelled:  "ملغي",
}

func statusLabel(s models.BookingStatus) string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return "غير محدد"
}

func statusChangedMessage(ref string, status models.BookingStatus) string {
	return fmt.Sprintf("تم تحديث حالة طلبك #%s إلى: %s", ref, statusLabel(status))
}
