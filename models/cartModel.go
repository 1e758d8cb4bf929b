package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem references a product by id. Product references within one cart
// are unique; repeated adds merge quantities instead of appending.
type CartItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// Cart holds the item list for a single user. At most one cart document
// exists per user, enforced by a unique index on the user field.
type Cart struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Items     []CartItem         `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PopulatedCartItem carries the full product record in place of its id.
type PopulatedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PopulatedCart is what cart endpoints return: every item dereferenced to
// its product so callers never see bare ids.
type PopulatedCart struct {
	ID        primitive.ObjectID  `json:"_id"`
	User      primitive.ObjectID  `json:"user"`
	Items     []PopulatedCartItem `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
