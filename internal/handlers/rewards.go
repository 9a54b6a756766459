package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
	"github.com/sparkquest/sparkquest-api/internal/services"
)

// GetRewards returns the reward catalog with per-user lock state.
func GetRewards(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	rewards, err := services.Rewards.ListRewards(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rewards)
}

// PurchaseReward redeems a reward against the caller's balance.
func PurchaseReward(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	rewardID := c.Params("id")
	if rewardID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid reward ID",
		})
	}

	purchase, err := services.Rewards.PurchaseReward(userID, rewardID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// GetPurchases returns the caller's purchase history.
func GetPurchases(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	purchases, err := services.Rewards.ListPurchases(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(purchases)
}
