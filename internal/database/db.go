package database

import (
	"log"

	"github.com/kasijobz/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the tables and the unique indexes the
	// duplicate-application and saved-job checks rely on
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.SavedJob{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
