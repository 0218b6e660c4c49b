package main

import (
	"log"

	"github.com/EasWay/bina-mobile/config"
	"github.com/EasWay/bina-mobile/internal/api"
	"github.com/EasWay/bina-mobile/pkg/database"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Migrate Models
	log.Println("Running migrations...")
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 4. Router
	r := api.NewRouter(database.DB, logger)

	// 5. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
