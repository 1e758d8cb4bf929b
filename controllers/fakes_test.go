package controllers

import (
	"context"
	"time"

	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Minimal in-memory implementations of the service store interfaces. The
// handler tests only care about status codes and envelopes, so these skip
// the locking the real stores never needed anyway.

type memProductStore struct {
	products map[primitive.ObjectID]models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[primitive.ObjectID]models.Product)}
}

func (m *memProductStore) add(product models.Product) models.Product {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products[product.ID] = product
	return product
}

func (m *memProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, len(m.products))
	for _, product := range m.products {
		all = append(all, product)
	}
	return all, nil
}

func (m *memProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, stores.ErrNotFound
	}
	product, ok := m.products[objectID]
	if !ok {
		return models.Product{}, stores.ErrNotFound
	}
	return product, nil
}

func (m *memProductStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	found := make(map[primitive.ObjectID]models.Product, len(ids))
	for _, id := range ids {
		if product, ok := m.products[id]; ok {
			found[id] = product
		}
	}
	return found, nil
}

func (m *memProductStore) Create(ctx context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	m.products[product.ID] = *product
	return nil
}

func (m *memProductStore) Update(ctx context.Context, id string, fields bson.M) (models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, stores.ErrNotFound
	}
	product, ok := m.products[objectID]
	if !ok {
		return models.Product{}, stores.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			product.Name = value.(string)
		case "price":
			product.Price = value.(float64)
		case "description":
			product.Description = value.(string)
		case "stockQuantity":
			product.StockQuantity = value.(int)
		case "image":
			product.Image = value.(string)
		case "category":
			product.Category = value.(string)
		}
	}
	m.products[objectID] = product
	return product, nil
}

func (m *memProductStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return stores.ErrNotFound
	}
	if _, ok := m.products[objectID]; !ok {
		return stores.ErrNotFound
	}
	delete(m.products, objectID)
	return nil
}

type memCartStore struct {
	carts map[primitive.ObjectID]models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[primitive.ObjectID]models.Cart)}
}

func (m *memCartStore) FindByUser(ctx context.Context, user primitive.ObjectID) (models.Cart, error) {
	for _, cart := range m.carts {
		if cart.User == user {
			return cart, nil
		}
	}
	return models.Cart{}, stores.ErrNotFound
}

func (m *memCartStore) Create(ctx context.Context, cart *models.Cart) error {
	cart.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	m.carts[cart.ID] = *cart
	return nil
}

func (m *memCartStore) UpdateItems(ctx context.Context, id primitive.ObjectID, items []models.CartItem) error {
	cart, ok := m.carts[id]
	if !ok {
		return stores.ErrNotFound
	}
	cart.Items = items
	cart.UpdatedAt = time.Now().UTC()
	m.carts[id] = cart
	return nil
}
