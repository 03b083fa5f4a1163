package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking references a flight by its id only. IsBooked starts false and
// flips to true exactly once when payment is confirmed; there is no refund
// or cancel transition.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Flight    primitive.ObjectID `bson:"flight" json:"flight"`
	IsBooked  bool               `bson:"isBooked" json:"isBooked"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
