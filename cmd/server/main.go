package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sparkquest/sparkquest-api/internal/config"
	"github.com/sparkquest/sparkquest-api/internal/database"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
	"github.com/sparkquest/sparkquest-api/internal/routes"
	"github.com/sparkquest/sparkquest-api/internal/services"
)

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if cfg.SeedCatalog {
		if err := database.SeedCatalog(); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	middleware.InitAuth(cfg.JWTSecret)
	services.Init(database.DB)

	app := fiber.New(fiber.Config{
		AppName: "SparkQuest API",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Setup(app)

	log.Printf("Listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
