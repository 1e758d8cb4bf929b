package services

import (
	"context"
	"errors"
	"sync"

	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartStore is the persistence surface for carts. stores.CartStore is the
// mongo-backed implementation.
type CartStore interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	UpdateItems(ctx context.Context, id primitive.ObjectID, items []models.CartItem) error
}

// CartService implements cart mutations and the on-demand total. Mutations
// for the same user are serialized with a per-user mutex: the store's
// read-modify-write on the item list is not atomic, and without the lock
// two concurrent adds could drop one of the updates.
type CartService struct {
	products ProductStore
	carts    CartStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCartService(products ProductStore, carts CartStore) *CartService {
	return &CartService{
		products: products,
		carts:    carts,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *CartService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// GetCart returns the user's cart, creating an empty one if none exists.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.PopulatedCart, float64, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	cart, err := s.getOrCreateCart(ctx, user)
	if err != nil {
		return nil, 0, err
	}
	return s.populate(ctx, cart)
}

// AddItem puts quantity units of a product into the cart, merging with any
// existing line for the same product. A nil quantity defaults to 1. Stock
// is checked against the merged total, not the delta.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity *int) (*models.PopulatedCart, float64, error) {
	if productID == "" {
		return nil, 0, ValidationError("Product ID is required")
	}
	requested := 1
	if quantity != nil {
		if *quantity < 1 {
			return nil, 0, ValidationError("Quantity must be a positive integer")
		}
		requested = *quantity
	}
	user, err := parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.getOrCreateCart(ctx, user)
	if err != nil {
		return nil, 0, err
	}

	itemIndex := findItem(cart.Items, product.ID)
	newQuantity := requested
	if itemIndex >= 0 {
		newQuantity = cart.Items[itemIndex].Quantity + requested
	}
	if product.StockQuantity < newQuantity {
		return nil, 0, &InsufficientStockError{
			Available: product.StockQuantity,
			Merged:    itemIndex >= 0,
		}
	}

	if itemIndex >= 0 {
		cart.Items[itemIndex].Quantity = newQuantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{Product: product.ID, Quantity: newQuantity})
	}

	if err := s.carts.UpdateItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, 0, err
	}
	return s.populate(ctx, cart)
}

// UpdateItemQuantity replaces an existing item's quantity. Unlike AddItem
// there is no default: an absent or non-positive quantity is an error, and
// the stock check is against the absolute value.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity *int) (*models.PopulatedCart, float64, error) {
	if quantity == nil || *quantity < 1 {
		return nil, 0, ValidationError("Quantity must be at least 1")
	}
	user, err := parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	if product.StockQuantity < *quantity {
		return nil, 0, &InsufficientStockError{Available: product.StockQuantity}
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.findCart(ctx, user)
	if err != nil {
		return nil, 0, err
	}

	itemIndex := findItem(cart.Items, product.ID)
	if itemIndex < 0 {
		return nil, 0, ErrItemNotFound
	}
	cart.Items[itemIndex].Quantity = *quantity

	if err := s.carts.UpdateItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, 0, err
	}
	return s.populate(ctx, cart)
}

// RemoveItem drops a product's line from the cart. Removing a product that
// is not in the cart is an error and leaves the item list untouched.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.PopulatedCart, float64, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	productObjectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, 0, ErrItemNotFound
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.findCart(ctx, user)
	if err != nil {
		return nil, 0, err
	}

	kept := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product != productObjectID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return nil, 0, ErrItemNotFound
	}
	cart.Items = kept

	if err := s.carts.UpdateItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, 0, err
	}
	return s.populate(ctx, cart)
}

// ClearCart empties the item list. The total is 0 by construction, never
// recomputed.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*models.PopulatedCart, float64, error) {
	user, err := parseUserID(userID)
	if err != nil {
		return nil, 0, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.findCart(ctx, user)
	if err != nil {
		return nil, 0, err
	}

	cart.Items = []models.CartItem{}
	if err := s.carts.UpdateItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, 0, err
	}

	return &models.PopulatedCart{
		ID:        cart.ID,
		User:      cart.User,
		Items:     []models.PopulatedCartItem{},
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, 0, nil
}

func (s *CartService) getOrCreateCart(ctx context.Context, user primitive.ObjectID) (models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, stores.ErrNotFound) {
		cart = models.Cart{User: user, Items: []models.CartItem{}}
		if err := s.carts.Create(ctx, &cart); err != nil {
			return models.Cart{}, err
		}
		return cart, nil
	}
	return cart, err
}

func (s *CartService) findCart(ctx context.Context, user primitive.ObjectID) (models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, user)
	if errors.Is(err, stores.ErrNotFound) {
		return models.Cart{}, ErrCartNotFound
	}
	return cart, err
}

func (s *CartService) findProduct(ctx context.Context, productID string) (models.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if errors.Is(err, stores.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

// populate dereferences every item to its full product record and computes
// the total from current prices. Items whose product has since been deleted
// are pruned: dropped from the response, removed from the stored document
// and excluded from the total.
func (s *CartService) populate(ctx context.Context, cart models.Cart) (*models.PopulatedCart, float64, error) {
	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	populated := make([]models.PopulatedCartItem, 0, len(cart.Items))
	kept := make([]models.CartItem, 0, len(cart.Items))
	total := 0.0
	for _, item := range cart.Items {
		product, ok := products[item.Product]
		if !ok {
			continue
		}
		populated = append(populated, models.PopulatedCartItem{Product: product, Quantity: item.Quantity})
		kept = append(kept, item)
		total += product.Price * float64(item.Quantity)
	}

	if len(kept) != len(cart.Items) {
		if err := s.carts.UpdateItems(ctx, cart.ID, kept); err != nil {
			return nil, 0, err
		}
		cart.Items = kept
	}

	return &models.PopulatedCart{
		ID:        cart.ID,
		User:      cart.User,
		Items:     populated,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, total, nil
}

func findItem(items []models.CartItem, product primitive.ObjectID) int {
	for i, item := range items {
		if item.Product == product {
			return i
		}
	}
	return -1
}

func parseUserID(userID string) (primitive.ObjectID, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, ValidationError("Invalid user id")
	}
	return user, nil
}
