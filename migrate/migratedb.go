package main

import (
	"log"

	"github.com/ameerhamza-malik/ItemManagement/config"
	"github.com/ameerhamza-malik/ItemManagement/database"
	"github.com/ameerhamza-malik/ItemManagement/models"
)

func main() {
	// Load environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Connect to DB and get the local DB instance
	db, err := database.ConnectToDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Running database migrations...")

	// Use the returned db instance to run AutoMigrate
	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
	)

	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully!")
}
