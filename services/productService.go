package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStore is the persistence surface the services need for products.
// stores.ProductStore is the mongo-backed implementation.
type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, fields bson.M) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	if input.Name == "" || input.Price == nil || input.Description == "" {
		return models.Product{}, ValidationError("Please provide name, price, and description")
	}
	if err := validateName(input.Name); err != nil {
		return models.Product{}, err
	}
	if err := validatePrice(*input.Price); err != nil {
		return models.Product{}, err
	}
	if err := validateDescription(input.Description); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
	}
	if input.StockQuantity != nil {
		if err := validateStockQuantity(*input.StockQuantity); err != nil {
			return models.Product{}, err
		}
		product.StockQuantity = *input.StockQuantity
	}
	if product.Image == "" {
		product.Image = models.DefaultProductImage
	}
	if product.Category == "" {
		product.Category = models.DefaultProductCategory
	}

	if err := s.store.Create(ctx, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update merges the non-nil fields into the stored product, re-validating
// each against the schema constraints.
func (s *ProductService) Update(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	fields := bson.M{}
	if update.Name != nil {
		if err := validateName(*update.Name); err != nil {
			return models.Product{}, err
		}
		fields["name"] = *update.Name
	}
	if update.Price != nil {
		if err := validatePrice(*update.Price); err != nil {
			return models.Product{}, err
		}
		fields["price"] = *update.Price
	}
	if update.Description != nil {
		if err := validateDescription(*update.Description); err != nil {
			return models.Product{}, err
		}
		fields["description"] = *update.Description
	}
	if update.StockQuantity != nil {
		if err := validateStockQuantity(*update.StockQuantity); err != nil {
			return models.Product{}, err
		}
		fields["stockQuantity"] = *update.StockQuantity
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}

	if len(fields) == 0 {
		return s.Get(ctx, id)
	}

	product, err := s.store.Update(ctx, id, fields)
	if errors.Is(err, stores.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	return product, err
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func validateName(name string) error {
	if name == "" {
		return ValidationError("Product name is required")
	}
	if len(name) > models.MaxProductNameLength {
		return ValidationError(fmt.Sprintf("Product name cannot exceed %d characters", models.MaxProductNameLength))
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return ValidationError("Price cannot be negative")
	}
	return nil
}

func validateDescription(description string) error {
	if description == "" {
		return ValidationError("Product description is required")
	}
	if len(description) > models.MaxProductDescriptionLength {
		return ValidationError(fmt.Sprintf("Description cannot exceed %d characters", models.MaxProductDescriptionLength))
	}
	return nil
}

func validateStockQuantity(quantity int) error {
	if quantity < 0 {
		return ValidationError("Stock quantity cannot be negative")
	}
	return nil
}
