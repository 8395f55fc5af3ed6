package main

import (
	"log"
	"os"

	"github.com/autumnvows/wedding_backend/controllers"
	"github.com/autumnvows/wedding_backend/database"
	"github.com/autumnvows/wedding_backend/docs"
	"github.com/autumnvows/wedding_backend/middleware"
	"github.com/autumnvows/wedding_backend/storage"
	"github.com/autumnvows/wedding_backend/websocket"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Wedding API
// @version         1.0
// @description     API Server for the wedding website: RSVP, photo sharing and admin dashboard
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Object storage for guest uploads and the hosts' curated photos
	storageRoot := os.Getenv("STORAGE_ROOT")
	if storageRoot == "" {
		storageRoot = "./data/storage"
	}
	baseURL := os.Getenv("STORAGE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port + "/storage"
	}
	store, err := storage.NewLocalStore(storageRoot, baseURL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	controllers.Init(store)

	// Set up Swagger info
	docs.SwaggerInfo.Title = "Wedding API"
	docs.SwaggerInfo.Description = "API Server for the wedding website"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + port
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Set up router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Stored objects are public by URL
	router.Static("/storage", store.Root())

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/register", controllers.Register)
		public.POST("/login", controllers.Login)
		public.POST("/password-reset", controllers.RequestPasswordReset)
		public.POST("/password-reset/confirm", controllers.ResetPassword)

		public.POST("/rsvp/verify", controllers.VerifyEmail)
		public.POST("/rsvp", controllers.SubmitRsvp)

		public.GET("/photos", controllers.GetPhotos)
		public.GET("/photos/curated", controllers.GetCuratedPhotos)
		public.GET("/photos/:id/reactions", controllers.GetReactions)
		public.GET("/photos/:id/comments", controllers.GetComments)

		public.GET("/event", controllers.GetEvent)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/me", controllers.Me)
		api.GET("/rsvp", controllers.GetMyRsvp)
		api.POST("/photos", controllers.UploadPhotos)
		api.POST("/photos/:id/reactions", controllers.ToggleReaction)
		api.POST("/photos/:id/comments", controllers.AddComment)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/guests", controllers.CreateGuest)
		admin.GET("/guests", controllers.ListGuests)
		admin.GET("/rsvps/summary", controllers.RsvpSummary)
	}

	// Live gallery feed
	router.GET("/ws", websocket.HandleConnection)

	// Start server
	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
