package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jkorir/dukani-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartStore struct {
	collection *mongo.Collection
}

func NewCartStore(db *mongo.Database) *CartStore {
	return &CartStore{collection: db.Collection("carts")}
}

func (s *CartStore) FindByUser(ctx context.Context, user primitive.ObjectID) (models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"user": user}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{}, ErrNotFound
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("find cart: %w", err)
	}
	return cart, nil
}

func (s *CartStore) Create(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	result, err := s.collection.InsertOne(ctx, cart)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	cart.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateItems replaces the cart's item list. The whole list is written as a
// unit; the cart document is the transactional boundary.
func (s *CartStore) UpdateItems(ctx context.Context, id primitive.ObjectID, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}

	result, err := s.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("update cart items: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
