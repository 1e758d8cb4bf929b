package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jkorir/dukani-api/initializers"
	"github.com/jkorir/dukani-api/middlewares"
	"github.com/jkorir/dukani-api/routes"
)

func init() {
	initializers.LoadEnv()
	initializers.InitLogger()
}

func allowedOrigins() []string {
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000"}
}

func main() {
	ctx := context.Background()

	db, err := initializers.ConnectToDB(ctx)
	if err != nil {
		initializers.Log.Fatalw("failed to connect to database", "error", err)
	}
	if err := initializers.EnsureIndexes(ctx, db); err != nil {
		initializers.Log.Fatalw("failed to create indexes", "error", err)
	}
	initializers.Log.Infow("connected to MongoDB", "database", db.Name())

	server := gin.Default()
	server.Use(middlewares.RequestId())
	server.Use(middlewares.Metrics())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, db)
	routes.CartRoutes(server, db)

	if err := server.Run(); err != nil {
		initializers.Log.Fatalw("server exited", "error", err)
	}
}
