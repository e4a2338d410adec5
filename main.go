package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"quickshop/config"
	_ "quickshop/docs"
	"quickshop/middleware"
	"quickshop/routes"
)

// @title QuickShop API
// @version 1.0
// @description E-commerce storefront backend: registration/login, product catalog, per-user shopping cart.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	cache := config.ConnectRedis()
	if cache != nil {
		defer cache.Close()
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, db, cache)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
