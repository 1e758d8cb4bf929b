// Seeds the products collection with sample data for testing. Existing
// products are wiped first.
//
//	go run ./cmd/seed
package main

import (
	"context"

	"github.com/jkorir/dukani-api/initializers"
	"github.com/jkorir/dukani-api/models"
	"github.com/jkorir/dukani-api/stores"
)

var sampleProducts = []models.Product{
	{
		Name:          "Wireless Bluetooth Headphones",
		Price:         2999,
		Description:   "Premium wireless headphones with active noise cancellation and 30-hour battery life",
		StockQuantity: 50,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
	},
	{
		Name:          "Smart Watch Pro",
		Price:         12999,
		Description:   "Advanced fitness tracking smartwatch with heart rate monitor and GPS",
		StockQuantity: 30,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
	},
	{
		Name:          "Laptop Backpack",
		Price:         1499,
		Description:   "Durable water-resistant backpack with padded laptop compartment",
		StockQuantity: 100,
		Category:      "Accessories",
		Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500",
	},
	{
		Name:          "Wireless Mouse",
		Price:         799,
		Description:   "Ergonomic wireless mouse with precision tracking and long battery life",
		StockQuantity: 75,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1527814050087-3793815479db?w=500",
	},
	{
		Name:          "USB-C Hub",
		Price:         1999,
		Description:   "7-in-1 USB-C hub with HDMI, USB 3.0, SD card reader and more",
		StockQuantity: 60,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=500",
	},
	{
		Name:          "Phone Stand",
		Price:         299,
		Description:   "Adjustable aluminum phone stand for desk use",
		StockQuantity: 120,
		Category:      "Accessories",
		Image:         "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=500",
	},
	{
		Name:          "Mechanical Keyboard",
		Price:         5999,
		Description:   "RGB mechanical gaming keyboard with blue switches",
		StockQuantity: 40,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1595225476474-87563907a212?w=500",
	},
	{
		Name:          "Webcam HD",
		Price:         3499,
		Description:   "1080p HD webcam with built-in microphone for video calls",
		StockQuantity: 55,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1588200908342-23b585c03e26?w=500",
	},
	{
		Name:          "Desk Lamp LED",
		Price:         1299,
		Description:   "Modern LED desk lamp with adjustable brightness and color temperature",
		StockQuantity: 80,
		Category:      "Home & Office",
		Image:         "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500",
	},
	{
		Name:          "Portable SSD 1TB",
		Price:         8999,
		Description:   "Ultra-fast portable SSD with USB 3.2 Gen 2 for quick data transfer",
		StockQuantity: 45,
		Category:      "Electronics",
		Image:         "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=500",
	},
}

func main() {
	initializers.LoadEnv()
	initializers.InitLogger()

	ctx := context.Background()
	db, err := initializers.ConnectToDB(ctx)
	if err != nil {
		initializers.Log.Fatalw("failed to connect to database", "error", err)
	}

	for i := range sampleProducts {
		if sampleProducts[i].Image == "" {
			sampleProducts[i].Image = models.DefaultProductImage
		}
		if sampleProducts[i].Category == "" {
			sampleProducts[i].Category = models.DefaultProductCategory
		}
	}

	store := stores.NewProductStore(db)

	deleted, err := store.DeleteAll(ctx)
	if err != nil {
		initializers.Log.Fatalw("failed to delete existing products", "error", err)
	}

	inserted, err := store.InsertMany(ctx, sampleProducts)
	if err != nil {
		initializers.Log.Fatalw("failed to insert sample products", "error", err)
	}

	initializers.Log.Infow("database seeded successfully", "deleted", deleted, "inserted", inserted)
}
