package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MaxProductNameLength        = 100
	MaxProductDescriptionLength = 500

	DefaultProductImage    = "https://via.placeholder.com/300"
	DefaultProductCategory = "General"
)

type Product struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Price         float64            `json:"price" bson:"price"`
	Description   string             `json:"description" bson:"description"`
	StockQuantity int                `json:"stockQuantity" bson:"stockQuantity"`
	Image         string             `json:"image" bson:"image"`
	Category      string             `json:"category" bson:"category"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput is the create payload. Price and StockQuantity are pointers
// so an absent field can be told apart from an explicit zero.
type ProductInput struct {
	Name          string   `json:"name"`
	Price         *float64 `json:"price"`
	Description   string   `json:"description"`
	StockQuantity *int     `json:"stockQuantity"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
}

// ProductUpdate is a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	Description   *string  `json:"description"`
	StockQuantity *int     `json:"stockQuantity"`
	Image         *string  `json:"image"`
	Category      *string  `json:"category"`
}
