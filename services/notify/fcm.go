package notify

import (
	"context"
	"fmt"

	"cleanmaster/models"
	"cleanmaster/utils"

	"firebase.google.com/go/v4/messaging"
)

// FCMSink publishes events as FCM topic messages. Admin events go to the
// shared admin topic, customer events to a per-phone topic the web client
// subscribes to after its first booking.
type FCMSink struct{}

const adminTopic = "admin-bookings"

func phoneTopic(phone string) string {
	return "customer-" + phone
}

func (FCMSink) Publish(ctx context.Context, event models.Event) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("fcm client not initialized")
	}

	topic := adminTopic
	if event.Phone != "" {
		topic = phoneTopic(event.Phone)
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: event.Title,
			Body:  event.Message,
		},
		Data: map[string]string{
			"kind":      string(event.Kind),
			"bookingId": event.Ref,
			"status":    string(event.Status),
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm publish: %w", err)
	}
	return nil
}
