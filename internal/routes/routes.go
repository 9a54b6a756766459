package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sparkquest/sparkquest-api/internal/handlers"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
)

func Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/profile", handlers.GetProfile)
	protected.Put("/profile", handlers.UpdateProfile)
	protected.Post("/profile/onboarding", handlers.CompleteOnboarding)

	quests := protected.Group("/quests")
	quests.Get("/", handlers.GetQuests)
	quests.Get("/personalized", handlers.GetPersonalizedQuests)

	userQuests := protected.Group("/user-quests")
	userQuests.Get("/", handlers.GetUserQuests)
	userQuests.Post("/", handlers.AssignQuest)
	userQuests.Post("/:id/start", handlers.StartQuest)
	userQuests.Post("/:id/complete", handlers.CompleteQuest)

	rewards := protected.Group("/rewards")
	rewards.Get("/", handlers.GetRewards)
	rewards.Get("/purchases", handlers.GetPurchases)
	rewards.Post("/:id/purchase", handlers.PurchaseReward)

	protected.Get("/activity", handlers.GetActivity)
}
