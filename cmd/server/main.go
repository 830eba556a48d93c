package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/auth"
	"github.com/pleone55/CS493-Final/internal/config"
	"github.com/pleone55/CS493-Final/internal/constants"
	"github.com/pleone55/CS493-Final/internal/database"
	"github.com/pleone55/CS493-Final/internal/handlers"
	"github.com/pleone55/CS493-Final/internal/middleware"
	"github.com/pleone55/CS493-Final/internal/repository"
	"github.com/pleone55/CS493-Final/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.tmpl")

	// Per-flow session state for the OAuth login flow
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	boatRepo := repository.NewBoatRepository(db)
	containerRepo := repository.NewContainerRepository(db)
	userRepo := repository.NewUserRepository(db)

	containerService := services.NewContainerService(containerRepo)
	boatService := services.NewBoatService(boatRepo, containerService)

	verifier := auth.NewVerifier(cfg.JWKSURI, cfg.JWTIssuer)

	// Initialize handlers
	boatHandler := handlers.NewBoatHandler(boatService)
	containerHandler := handlers.NewContainerHandler(containerService)
	userHandler := handlers.NewUserHandler(userRepo)
	oauthHandler := handlers.NewOAuthHandler(cfg, userRepo)

	// OAuth login flow (public)
	r.GET("/", oauthHandler.Home)
	r.GET("/authorize", oauthHandler.Authorize)
	r.GET("/oauth", oauthHandler.Callback)
	r.GET("/granted", oauthHandler.Granted)

	// Boat routes (protected, owner-scoped)
	boats := r.Group("/boats")
	boats.Use(middleware.RequireAuth(verifier))
	{
		boats.POST("", boatHandler.CreateBoat)
		boats.GET("", boatHandler.ListBoats)
		boats.GET("/:boat_id", boatHandler.GetBoat)
		boats.PATCH("/:boat_id", boatHandler.PatchBoat)
		boats.PUT("/:boat_id", boatHandler.PutBoat)
		boats.DELETE("/:boat_id", boatHandler.DeleteBoat)
		boats.PUT("/:boat_id/containers/:container_id", boatHandler.AttachContainer)
		boats.DELETE("/:boat_id/containers/:container_id", boatHandler.DetachContainer)
	}
	// Collection-level writes are rejected regardless of credentials
	r.DELETE("/boats", boatHandler.DeleteAll)
	r.PUT("/boats", boatHandler.UpdateAll)

	// Container routes (no ownership concept)
	containers := r.Group("/containers")
	{
		containers.POST("", containerHandler.CreateContainer)
		containers.GET("", containerHandler.ListContainers)
		containers.GET("/:container_id", containerHandler.GetContainer)
		containers.PATCH("/:container_id", containerHandler.PatchContainer)
		containers.PUT("/:container_id", containerHandler.PutContainer)
		containers.DELETE("/:container_id", containerHandler.DeleteContainer)
	}
	r.DELETE("/containers", containerHandler.DeleteAll)
	r.PUT("/containers", containerHandler.UpdateAll)

	// User routes (created only via the OAuth callback)
	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:user_id", userHandler.GetUser)
		users.DELETE("/:user_id", userHandler.DeleteUser)
	}

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
