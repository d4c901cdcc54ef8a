// main.go - Entry point for the asset tracking backend server

package main

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-asset-backend/config"
	"go-asset-backend/database"
	"go-asset-backend/handlers"
	"go-asset-backend/middleware"
	"go-asset-backend/models"
	"go-asset-backend/mqtt"
	"go-asset-backend/realtime"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB, CORS, JWT secret, admin seed)

	db, err := database.Connect(cfg) // Connect, migrate and seed the default admin
	if err != nil {
		logger.Fatal("database connection error", zap.Error(err))
	}

	hub := realtime.NewHub(logger)
	go hub.Run() // Broadcast loop runs for the process lifetime

	var bridge *mqtt.Bridge
	if cfg.MQTTBroker != "" {
		bridge, err = mqtt.Connect(cfg.MQTTBroker, cfg.MQTTTopic, logger)
		if err != nil {
			logger.Fatal("mqtt connection error", zap.Error(err))
		}
		defer bridge.Disconnect()
	}

	h := handlers.New(db, hub, bridge, cfg, logger)

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.FrontendURL, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "x-auth-token"},
		AllowCredentials: true,
	}))

	// Public routes (no authentication required)
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register) // Public route: user registration
		auth.POST("/login", h.Login)       // Public route: user login
	}

	// Protected routes (require a valid token)
	assets := r.Group("/api/assets")
	assets.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		assets.GET("", h.ListAssets)
		assets.POST("", h.CreateAsset)
		assets.GET("/:id", h.GetAsset)
		assets.PUT("/:id", h.UpdateAsset)
		assets.DELETE("/:id", h.DeleteAsset)
	}

	// Admin-only routes
	users := r.Group("/api/users")
	users.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	// Realtime channel. The socket itself is unauthenticated; every
	// connected client receives every mutation event.
	r.GET("/ws", hub.ServeWS)

	// STEP 3: Start the web server
	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
