package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/paatispantry/pantry-api/initializers"
	"github.com/paatispantry/pantry-api/middlewares"
	"github.com/paatispantry/pantry-api/routes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.RequestMetrics())

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server)
	routes.CustomerRoutes(server)
	routes.OrderRoutes(server)
	routes.SalesRoutes(server)
	routes.PaymentRoutes(server)
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server.Run()
}
