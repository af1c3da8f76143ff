package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/arifhn/socialbase/backend/internal/handlers"
	"github.com/arifhn/socialbase/backend/internal/middleware"
	"github.com/arifhn/socialbase/backend/internal/models"
	"github.com/arifhn/socialbase/backend/internal/repositories"
	"github.com/arifhn/socialbase/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient may be nil when Firebase is not configured.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, jwtSecret string) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database("socialbase"))
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	// --- Services ---
	notifier := services.NewNotifier(notificationRepo)
	socialGraph := services.NewSocialGraphService(followRepo, userRepo, notifier)
	content := services.NewContentService(postRepo, commentRepo, likeRepo, notifier)
	feed := services.NewFeedService(followRepo, postRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, profileRepo, firebaseAuthClient, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	userHandler := handlers.NewUserHandler(userRepo, profileRepo, followRepo)
	userHandler.RegisterProfileRoutes(api)

	followHandler := handlers.NewFollowHandler(socialGraph)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(content)
	postHandler.RegisterPostRoutes(api)

	commentHandler := handlers.NewCommentHandler(content)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(content)
	likeHandler.RegisterLikeRoutes(api)

	feedHandler := handlers.NewFeedHandler(feed)
	feedHandler.RegisterFeedRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notifier)
	notificationHandler.RegisterNotificationRoutes(api)

	log.Println("All routes configured.")
}
