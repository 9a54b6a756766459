package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sparkquest/sparkquest-api/internal/database"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
	"github.com/sparkquest/sparkquest-api/internal/models"
)

// GetActivity returns the caller's paginated point-event timeline.
func GetActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	// Pagination
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	offset := (page - 1) * limit

	var activities []models.Activity
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return serviceError(c, err)
	}

	var total int64
	err = database.DB.Model(&models.Activity{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"activities": activities,
		"total":      total,
		"page":       page,
		"limit":      limit,
	})
}
