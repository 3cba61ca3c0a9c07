package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	snapblogHTTP "snapblog/internal/controller/http"
	"snapblog/internal/repo/persistent"
	"snapblog/internal/usecase"
	"snapblog/pkg/config"
	"snapblog/pkg/jwt"
	"snapblog/pkg/logger"
	"snapblog/pkg/middleware"
	"snapblog/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "snapblog/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	userUseCase := usecase.NewUserUseCase(userRepo, postRepo, commentRepo, s3Client, log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, userRepo, s3Client, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, log)

	// Initialize HTTP handlers
	authHandler := snapblogHTTP.NewAuthHandler(authUseCase, log)
	userHandler := snapblogHTTP.NewUserHandler(userUseCase, log)
	postHandler := snapblogHTTP.NewPostHandler(postUseCase, log)
	commentHandler := snapblogHTTP.NewCommentHandler(commentUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/count", postHandler.CountPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/users/:id", userHandler.GetUser)
	}

	// Authenticated routes
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(jwtService))
	auth.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		auth.POST("/posts", postHandler.CreatePost)
		auth.PUT("/posts/:id", postHandler.UpdatePost)
		auth.DELETE("/posts/:id", postHandler.DeletePost)
		auth.PUT("/posts/update-image/:id", postHandler.UpdatePostImage)
		auth.PUT("/posts/like/:id", postHandler.LikePost)

		auth.POST("/users/profile-photo-upload", userHandler.UploadProfilePhoto)
		auth.PUT("/users/:id", userHandler.UpdateUser)
		auth.DELETE("/users/:id", userHandler.DeleteUser)

		auth.POST("/comments", commentHandler.CreateComment)
		auth.PUT("/comments/:id", commentHandler.UpdateComment)
		auth.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	// Admin routes
	admin := auth.Group("")
	admin.Use(middleware.AdminMiddleware())

	{
		admin.GET("/users", userHandler.ListUsers)
		admin.GET("/users/count", userHandler.CountUsers)
		admin.GET("/comments", commentHandler.ListComments)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Snapblog starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down snapblog...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Snapblog exited")
}
