package main

import (
	"context"
	"log"

	_ "uniformes/api/swagger" // swagger docs
	"uniformes/internal/config"
	"uniformes/internal/database"
	"uniformes/internal/feed"
	"uniformes/internal/handler"
	"uniformes/internal/repository"
	"uniformes/internal/service"
	"uniformes/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Uniform Request API
// @version         1.0
// @description     Backend for submitting uniform/footwear requests with live aggregated statistics.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub, snapshot broker and the live history projection
	wsHub := websocket.NewHub()
	go wsHub.Run()
	broker := feed.NewBroker()
	defer broker.Close()
	viewModel := feed.NewViewModel(broker)
	defer viewModel.Stop()

	// Set up dependencies (Repository -> Service -> Handler)
	deliveryRepo := repository.NewDeliveryRepository(db)
	deliveryService := service.NewDeliveryService(deliveryRepo, broker, wsHub)
	statisticsService := service.NewStatisticsService(deliveryRepo, viewModel)
	sessionService := service.NewSessionService(cfg.JWTSecret, cfg.AdminCodeHash)

	// Seed the feed so the projection is Ready before the first submission
	if snapshot, err := deliveryRepo.ListNewestFirst(context.Background()); err != nil {
		log.Printf("Initial snapshot load failed: %v", err)
	} else {
		broker.Publish(snapshot)
	}

	// Initialize Handlers
	deliveryHandler := handler.NewDeliveryHandler(deliveryService, cfg.JWTSecret)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService, cfg.JWTSecret)
	sessionHandler := handler.NewSessionHandler(sessionService)
	catalogHandler := handler.NewCatalogHandler()

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, cfg.JWTSecret)
	})

	// Register API Routes
	sessionHandler.RegisterRoutes(router.Group(""))
	catalogHandler.RegisterRoutes(router.Group(""))
	deliveryHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
