package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sparkquest/sparkquest-api/internal/errs"
)

// serviceError maps service-layer sentinels to HTTP responses. Anything
// unrecognized is treated as transient and never leaks its internals.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, errs.ErrReflectionTooShort):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Reflection must be at least 10 characters",
		})
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, errs.ErrAlreadyAssigned):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Quest already assigned",
		})
	case errors.Is(err, errs.ErrAlreadyCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Quest already completed",
		})
	case errors.Is(err, errs.ErrInsufficientPoints):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Not enough spark points",
		})
	case errors.Is(err, errs.ErrRewardLocked):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Reward is locked",
		})
	case errors.Is(err, errs.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Already exists",
		})
	}

	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "Temporary failure, please retry",
	})
}
