package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"airline_booking_api/models"
)

// AirlineRepository provides the persistence operations the airline and
// booking controllers need on the airlines collection.
type AirlineRepository interface {
	Insert(ctx context.Context, airline *models.Airline) error
	FindByName(ctx context.Context, name string) (*models.Airline, error)
	FindByFlightID(ctx context.Context, flightID primitive.ObjectID) (*models.Airline, error)
	PushFlight(ctx context.Context, airlineID primitive.ObjectID, flight models.Flight) (*models.Airline, error)
	FindAll(ctx context.Context) ([]models.Airline, int64, error)
	Search(ctx context.Context, departureCity, destinationCity string, date time.Time) ([]models.Airline, error)
}

type MongoAirlineRepository struct {
	collection *mongo.Collection
}

func NewMongoAirlineRepository(collection *mongo.Collection) *MongoAirlineRepository {
	return &MongoAirlineRepository{collection: collection}
}

func (r *MongoAirlineRepository) Insert(ctx context.Context, airline *models.Airline) error {
	_, err := r.collection.InsertOne(ctx, airline)
	return err
}

func (r *MongoAirlineRepository) FindByName(ctx context.Context, name string) (*models.Airline, error) {
	var airline models.Airline
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&airline)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &airline, nil
}

// FindByFlightID returns the airline embedding the flight with the given id.
func (r *MongoAirlineRepository) FindByFlightID(ctx context.Context, flightID primitive.ObjectID) (*models.Airline, error) {
	var airline models.Airline
	err := r.collection.FindOne(ctx, bson.M{"flights._id": flightID}).Decode(&airline)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &airline, nil
}

// PushFlight appends the flight with a single atomic update and returns the
// updated airline, so two concurrent appends on the same airline cannot drop
// each other's flight.
func (r *MongoAirlineRepository) PushFlight(ctx context.Context, airlineID primitive.ObjectID, flight models.Flight) (*models.Airline, error) {
	var airline models.Airline
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": airlineID},
		bson.M{"$push": bson.M{"flights": flight}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&airline)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &airline, nil
}

func (r *MongoAirlineRepository) FindAll(ctx context.Context) ([]models.Airline, int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	airlines := []models.Airline{}
	if err := cursor.All(ctx, &airlines); err != nil {
		return nil, 0, err
	}
	return airlines, count, nil
}

// Search matches airlines holding at least one flight with the exact
// (departureCity, destinationCity, date) triple, then narrows each matched
// airline's flight list down to only the matching flights. Inputs must
// already be normalized: cities lowercased, date at UTC midnight.
func (r *MongoAirlineRepository) Search(ctx context.Context, departureCity, destinationCity string, date time.Time) ([]models.Airline, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"flights.departureCity":   departureCity,
			"flights.destinationCity": destinationCity,
			"flights.date":            date,
		}}},
		{{Key: "$project", Value: bson.M{
			"name": 1,
			"flights": bson.M{
				"$filter": bson.M{
					"input": "$flights",
					"as":    "flight",
					"cond": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$$flight.departureCity", departureCity}},
						bson.M{"$eq": bson.A{"$$flight.destinationCity", destinationCity}},
						bson.M{"$eq": bson.A{"$$flight.date", date}},
					}},
				},
			},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	airlines := []models.Airline{}
	if err := cursor.All(ctx, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}
