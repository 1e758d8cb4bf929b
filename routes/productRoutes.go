package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/controllers"
	"github.com/jkorir/dukani-api/services"
	"github.com/jkorir/dukani-api/stores"
	"go.mongodb.org/mongo-driver/mongo"
)

func ProductRoutes(server *gin.Engine, db *mongo.Database) {
	store := stores.NewProductStore(db)
	service := services.NewProductService(store)
	controller := controllers.NewProductController(service)

	products := server.Group("/api/products")
	products.GET("", controller.GetProducts)
	products.GET("/:id", controller.GetProduct)
	products.POST("", controller.CreateProduct)
	products.PUT("/:id", controller.UpdateProduct)
	products.DELETE("/:id", controller.DeleteProduct)
	products.POST("/:id/image", controller.UploadProductImage)
}
