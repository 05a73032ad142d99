package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobboard/internal/auth"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// 2. Database Connection
	db := database.Connect()

	// 3. Initialize Core Services
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	userService := services.NewUserService(db)
	extractService := services.NewExtractService()

	// 4. Initialize Handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	jobHandler := handlers.NewJobHandler(jobService, extractService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(userService)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // For development only
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))
	r.Use(auth.Authenticate())

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/token", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)

		api.GET("/companies", companyHandler.ListCompanies)
		api.GET("/companies/:handle", companyHandler.GetCompany)
		api.POST("/companies", auth.RequireAdmin(), companyHandler.CreateCompany)
		api.PATCH("/companies/:handle", auth.RequireAdmin(), companyHandler.UpdateCompany)
		api.DELETE("/companies/:handle", auth.RequireAdmin(), companyHandler.DeleteCompany)

		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)
		api.POST("/jobs", auth.RequireAdmin(), jobHandler.CreateJob)
		api.PATCH("/jobs/:id", auth.RequireAdmin(), jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", auth.RequireAdmin(), jobHandler.DeleteJob)
		if extractService != nil {
			api.POST("/jobs/extract", auth.RequireAdmin(), jobHandler.ExtractJob)
		}

		api.GET("/users", auth.RequireAdmin(), userHandler.ListUsers)
		api.POST("/users", auth.RequireAdmin(), userHandler.CreateUser)
		api.GET("/users/:username", auth.RequireSelfOrAdmin("username"), userHandler.GetUser)
		api.PATCH("/users/:username", auth.RequireSelfOrAdmin("username"), userHandler.UpdateUser)
		api.DELETE("/users/:username", auth.RequireSelfOrAdmin("username"), userHandler.DeleteUser)
		api.POST("/users/:username/jobs/:id", auth.RequireSelfOrAdmin("username"), userHandler.Apply)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on port " + port + "...")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
