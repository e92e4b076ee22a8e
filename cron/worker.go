package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cleanmaster/config"
	"cleanmaster/models"
	"cleanmaster/services/notify"
	"cleanmaster/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(sink notify.Sink) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(sink))

	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(sink notify.Sink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] ⏰ Triggering visit reminder for %s (%s %s)", p.Ref, p.Date, p.Time)

		event := models.Event{
			Kind:    models.EventVisitReminder,
			Ref:     p.Ref,
			Phone:   p.Phone,
			Title:   "تذكير بموعد الزيارة ⏰",
			Message: fmt.Sprintf("موعد زيارتنا لطلبك #%s غداً %s الساعة %s", p.Ref, p.Date, p.Time),
		}

		if err := sink.Publish(ctx, event); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
