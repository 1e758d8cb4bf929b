package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Dukani API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCTS
- GET "/api/products" - Get all products
- GET "/api/products/:id" - Get product by ID
- POST "/api/products" - Create new product
- PUT "/api/products/:id" - Update a product
- DELETE "/api/products/:id" - Delete a product
- POST "/api/products/:id/image" - Upload a product image

CART (requires authentication)
- GET "/api/cart" - Get your cart
- POST "/api/cart" - Add product to cart
- PUT "/api/cart/:productId" - Update cart item quantity
- DELETE "/api/cart/:productId" - Remove product from cart
- DELETE "/api/cart" - Clear entire cart`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
