package notify

import (
	"context"
	"time"

	"cleanmaster/database/repository/bookingrepo"
	"cleanmaster/models"

	"go.uber.org/zap"
)

// MongoFeed polls the booking collection and hands each subscriber a full
// snapshot, newest first, every Interval.
type MongoFeed struct {
	Repo     bookingrepo.BookingRepository
	Interval time.Duration
	Logger   *zap.Logger
}

// Subscribe starts a poll loop for one subscriber. An immediate first poll
// primes the subscriber's baseline before the ticker takes over.
func (f *MongoFeed) Subscribe(onSnapshot func([]models.Booking)) (func(), error) {
	interval := f.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	deliver := func() {
		pollCtx, pollCancel := context.WithTimeout(ctx, interval)
		defer pollCancel()
		snapshot, err := f.Repo.GetAll(pollCtx)
		if err != nil {
			f.logger().Warn("booking feed poll failed", zap.Error(err))
			return
		}
		onSnapshot(snapshot)
	}

	go func() {
		deliver()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver()
			}
		}
	}()

	return cancel, nil
}

func (f *MongoFeed) logger() *zap.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return zap.L()
}
