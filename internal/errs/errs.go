// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across service/handler layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the input failed domain validation. Wrapped
	// errors carry the specific field detail.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrAlreadyAssigned indicates the user already has an assignment for the quest.
	ErrAlreadyAssigned = errors.New("quest already assigned")

	// ErrAlreadyCompleted indicates the assignment is already in its terminal state.
	ErrAlreadyCompleted = errors.New("quest already completed")

	// ErrReflectionTooShort indicates the completion reflection did not meet
	// the minimum length.
	ErrReflectionTooShort = errors.New("reflection too short")

	// ErrInsufficientPoints indicates the balance cannot cover a reward's cost.
	ErrInsufficientPoints = errors.New("insufficient spark points")

	// ErrRewardLocked indicates the reward's availability rule evaluated false.
	ErrRewardLocked = errors.New("reward locked")
)
