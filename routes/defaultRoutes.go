package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/controllers"
	"github.com/jkorir/dukani-api/middlewares"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/metrics", middlewares.MetricsHandler())
}
