package main

import (
	"time"

	"github.com/Murph-Dev/SimplePiBackend/config"
	"github.com/Murph-Dev/SimplePiBackend/controllers"
	"github.com/Murph-Dev/SimplePiBackend/middlewares"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Connect to the database and migrate models
	db, err := config.Connect()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	controllers.MigrateModels(db)

	// Set up Gin router with request logging and CORS for the dashboard
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middlewares.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "X-Device-ID", "X-Request-ID"},
		AllowCredentials: false,
	}))

	controllers.RegisterRoutes(r)

	// Tiny browser dashboard
	r.Static("/static", "./static")
	r.StaticFile("/", "./static/index.html")

	port := config.Getenv("PORT", "8080")
	logger.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
