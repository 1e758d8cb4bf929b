package services

import (
	"context"
	"sync"
	"time"

	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the mongo stores.

type fakeProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[primitive.ObjectID]models.Product)}
}

func (f *fakeProductStore) add(product models.Product) models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
		product.UpdatedAt = now
	}
	f.products[product.ID] = product
	return product
}

func (f *fakeProductStore) setPrice(id primitive.ObjectID, price float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product := f.products[id]
	product.Price = price
	f.products[id] = product
}

func (f *fakeProductStore) remove(id primitive.ObjectID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
}

func (f *fakeProductStore) FindAll(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]models.Product, 0, len(f.products))
	for _, product := range f.products {
		all = append(all, product)
	}
	return all, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id string) (models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, stores.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[objectID]
	if !ok {
		return models.Product{}, stores.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found := make(map[primitive.ObjectID]models.Product, len(ids))
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			found[id] = product
		}
	}
	return found, nil
}

func (f *fakeProductStore) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.ID = primitive.NewObjectID()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, id string, fields bson.M) (models.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, stores.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	product, ok := f.products[objectID]
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
	product.UpdatedAt = time.Now().UTC()
	f.products[objectID] = product
	return product, nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return stores.ErrNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.products[objectID]; !ok {
		return stores.ErrNotFound
	}
	delete(f.products, objectID)
	return nil
}

type fakeCartStore struct {
	mu    sync.Mutex
	carts map[primitive.ObjectID]models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[primitive.ObjectID]models.Cart)}
}

func (f *fakeCartStore) byUser(user primitive.ObjectID) (models.Cart, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cart := range f.carts {
		if cart.User == user {
			return cart, true
		}
	}
	return models.Cart{}, false
}

func (f *fakeCartStore) FindByUser(ctx context.Context, user primitive.ObjectID) (models.Cart, error) {
	cart, ok := f.byUser(user)
	if !ok {
		return models.Cart{}, stores.ErrNotFound
	}
	return cart, nil
}

func (f *fakeCartStore) Create(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	cart.CreatedAt = now
	cart.UpdatedAt = now
	cart.ID = primitive.NewObjectID()
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[cart.ID] = *cart
	return nil
}

func (f *fakeCartStore) UpdateItems(ctx context.Context, id primitive.ObjectID, items []models.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[id]
	if !ok {
		return stores.ErrNotFound
	}
	cart.Items = items
	cart.UpdatedAt = time.Now().UTC()
	f.carts[id] = cart
	return nil
}
