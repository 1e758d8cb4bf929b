package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/controllers"
	"github.com/jkorir/dukani-api/middlewares"
	"github.com/jkorir/dukani-api/services"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/mongo"
)

func CartRoutes(server *gin.Engine, db *mongo.Database) {
	service := services.NewCartService(stores.NewProductStore(db), stores.NewCartStore(db))
	controller := controllers.NewCartController(service)

	cart := server.Group("/api/cart", middlewares.Authenticate())
	cart.GET("", controller.GetCart)
	cart.POST("", controller.AddToCart)
	cart.PUT("/:productId", controller.UpdateCartItem)
	cart.DELETE("/:productId", controller.RemoveFromCart)
	cart.DELETE("", controller.ClearCart)
}
