package bookingrepo

import (
	"context"
	"errors"

	"cleanmaster/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given reference.
var ErrNotFound = errors.New("booking not found")

// Create inserts a new booking and returns the stored record.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return r.GetByRef(ctx, booking.Ref)
}

// GetByRef returns a single booking by its reference.
func (r *mongoBookingRepo) GetByRef(ctx context.Context, ref string) (*models.Booking, error) {
	var doc bookingDoc
	err := r.coll.FindOne(ctx, bson.M{"bookingId": ref}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b := doc.toBooking()
	return &b, nil
}

// GetAll returns every booking, newest first.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

// GetByPhone returns the bookings made with the given phone, newest first.
func (r *mongoBookingRepo) GetByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"phone": phone})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	bookings := make([]models.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, d.toBooking())
	}
	return bookings, nil
}

// UpdateStatus sets the booking's status. Transitions are unconstrained.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, ref string, status models.BookingStatus) (*models.Booking, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"bookingId": ref}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.GetByRef(ctx, ref)
}
