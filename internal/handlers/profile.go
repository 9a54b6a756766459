package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sparkquest/sparkquest-api/internal/middleware"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/sparkquest/sparkquest-api/internal/services"
)

// GetProfile returns the caller's profile, creating it on first access.
func GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	profile, err := services.Profiles.EnsureProfile(userID, fallbackName(middleware.GetEmail(c)))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile":   profile,
		"onboarded": profile.Onboarded(),
	})
}

func CompleteOnboarding(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// The profile row must exist before onboarding can fill it in.
	if _, err := services.Profiles.EnsureProfile(userID, fallbackName(middleware.GetEmail(c))); err != nil {
		return serviceError(c, err)
	}

	profile, err := services.Profiles.CompleteOnboarding(userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(profile)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := services.Profiles.UpdateProfile(userID, req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(profile)
}

// fallbackName derives a display name from the email local part.
func fallbackName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "New User"
}
