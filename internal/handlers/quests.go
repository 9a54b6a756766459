package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/sparkquest/sparkquest-api/internal/services"
)

// GetQuests returns the full quest catalog.
func GetQuests(c *fiber.Ctx) error {
	quests, err := services.Quests.ListQuests()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(quests)
}

// GetPersonalizedQuests returns the bounded candidate set for the caller.
// ?frequency=daily|weekly overrides the profile's cadence preference;
// ?limit bounds ad hoc discovery lists.
func GetPersonalizedQuests(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	frequency := models.QuestFrequency(c.Query("frequency"))
	if frequency != "" && !frequency.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid frequency. Must be: daily, weekly, or flexible",
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	if limit < 0 || limit > 50 {
		limit = 0
	}

	quests, err := services.Quests.Personalized(userID, frequency, limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(quests)
}

// GetUserQuests returns the caller's assignment ledger.
func GetUserQuests(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	userQuests, err := services.Quests.ListUserQuests(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(userQuests)
}

// AssignQuest links a catalog quest to the caller.
func AssignQuest(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.AssignQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.QuestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "questId is required",
		})
	}

	userQuest, err := services.Quests.AssignQuest(userID, req.QuestID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(userQuest)
}

// StartQuest moves an assignment to in_progress.
func StartQuest(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	userQuestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quest assignment ID",
		})
	}

	userQuest, err := services.Quests.StartQuest(userID, userQuestID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(userQuest)
}

// CompleteQuest finishes an assignment and credits its point reward.
func CompleteQuest(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	userQuestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid quest assignment ID",
		})
	}

	var req models.CompleteQuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := services.Quests.CompleteQuest(userID, userQuestID, req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
