package bookingrepo

import (
	"context"

	"cleanmaster/database"
	"cleanmaster/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence boundary for bookings. Reads tolerate
// the legacy single-`service` document shape and always hand back the
// canonical form; list results are ordered by timestamp descending.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetByRef(ctx context.Context, ref string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, ref string, status models.BookingStatus) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("cleanmaster")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
