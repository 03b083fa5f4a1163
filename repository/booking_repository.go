package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"airline_booking_api/models"
)

// BookingRepository provides the persistence operations the booking
// controller needs on the bookings collection.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindAll(ctx context.Context) ([]models.Booking, error)
	ConfirmPayment(ctx context.Context, flightID primitive.ObjectID) error
}

type MongoBookingRepository struct {
	collection *mongo.Collection
}

func NewMongoBookingRepository(collection *mongo.Collection) *MongoBookingRepository {
	return &MongoBookingRepository{collection: collection}
}

func (r *MongoBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

func (r *MongoBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ConfirmPayment flips isBooked with a single conditional update so two
// concurrent payments for the same flight cannot both succeed. When nothing
// was modified, a follow-up count classifies the outcome as ErrNotFound or
// ErrAlreadyPaid.
func (r *MongoBookingRepository) ConfirmPayment(ctx context.Context, flightID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"flight": flightID, "isBooked": false},
		bson.M{"$set": bson.M{"isBooked": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount > 0 {
		return nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"flight": flightID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrAlreadyPaid
}
