package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/services"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// currentUserID reads the verified user id placed in the context by the
// Authenticate middleware.
func currentUserID(ctx *gin.Context) string {
	return ctx.GetString("userId")
}

func cartData(cart interface{}, total float64) gin.H {
	return gin.H{"cart": cart, "total": total}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	cart, total, err := c.service.GetCart(ctx, userID)
	if err != nil {
		c.respondCartError(ctx, err, "Error fetching cart")
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "", cartData(cart, total))
}

func (c *CartController) AddToCart(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var body struct {
		ProductID string `json:"productId"`
		Quantity  *int   `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, total, err := c.service.AddItem(ctx, userID, body.ProductID, body.Quantity)
	if err != nil {
		c.respondCartError(ctx, err, "Error adding product to cart")
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Product added to cart successfully", cartData(cart, total))
}

func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	// A malformed body is treated as a missing quantity; the service
	// rejects it with the same message either way.
	_ = ctx.ShouldBindJSON(&body)

	cart, total, err := c.service.UpdateItemQuantity(ctx, userID, ctx.Param("productId"), body.Quantity)
	if err != nil {
		c.respondCartError(ctx, err, "Error updating cart")
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Cart updated successfully", cartData(cart, total))
}

func (c *CartController) RemoveFromCart(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	cart, total, err := c.service.RemoveItem(ctx, userID, ctx.Param("productId"))
	if err != nil {
		c.respondCartError(ctx, err, "Error removing product from cart")
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Product removed from cart successfully", cartData(cart, total))
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	userID := currentUserID(ctx)
	if userID == "" {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	cart, total, err := c.service.ClearCart(ctx, userID)
	if err != nil {
		c.respondCartError(ctx, err, "Error clearing cart")
		return
	}

	sendSuccessResponse(ctx, http.StatusOK, "Cart cleared successfully", cartData(cart, total))
}

func (c *CartController) respondCartError(ctx *gin.Context, err error, fallback string) {
	var validationErr services.ValidationError
	var stockErr *services.InsufficientStockError

	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(ctx, http.StatusBadRequest, string(validationErr))
	case errors.As(err, &stockErr):
		message := fmt.Sprintf("Only %d items available in stock", stockErr.Available)
		if stockErr.Merged {
			message = "Cannot add more. " + message
		}
		sendErrorResponse(ctx, http.StatusBadRequest, message)
	case errors.Is(err, services.ErrProductNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
	case errors.Is(err, services.ErrCartNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Cart not found")
	case errors.Is(err, services.ErrItemNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found in cart")
	default:
		sendInternalErrorResponse(ctx, fallback, err)
	}
}
