package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Airline owns an ordered list of embedded flights. Flights are only
// addressable through their parent airline document plus their own id.
type Airline struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Flights []Flight           `bson:"flights" json:"flights"`
}

// Flight ids are generated server-side at embed time and are globally
// unique, so a Booking can reference a flight without recording the parent
// airline. City names are lowercased and dates canonicalized to UTC midnight
// before the flight is stored.
type Flight struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	DepartureCity   string             `bson:"departureCity" json:"departureCity"`
	DestinationCity string             `bson:"destinationCity" json:"destinationCity"`
	Price           float64            `bson:"price" json:"price"`
	Date            time.Time          `bson:"date" json:"date"`
}
