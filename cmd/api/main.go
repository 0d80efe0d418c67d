package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kasijobz/backend/internal/config"
	"github.com/kasijobz/backend/internal/database"
	"github.com/kasijobz/backend/internal/handlers"
	"github.com/kasijobz/backend/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional in deployment)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	dashboardService := services.NewDashboardService(db)
	savedJobsService := services.NewSavedJobsService(db)

	// 4. Initialize Handlers
	userHandler := handlers.NewUserHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService, dashboardService, savedJobsService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 5. Router, CORS and routes
	r := handlers.NewRouter(userHandler, jobHandler, applicationHandler)

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
