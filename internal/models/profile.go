package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PersonalityType is the closed set of personality classifications. An
// unrecognized value is rejected at onboarding, never silently defaulted.
type PersonalityType string

const (
	PersonalityAdventurous   PersonalityType = "adventurous"
	PersonalityIntrospective PersonalityType = "introspective"
	PersonalitySocial        PersonalityType = "social"
	PersonalityCreative      PersonalityType = "creative"
	PersonalityAnalytical    PersonalityType = "analytical"
)

func (p PersonalityType) Valid() bool {
	switch p {
	case PersonalityAdventurous, PersonalityIntrospective, PersonalitySocial,
		PersonalityCreative, PersonalityAnalytical:
		return true
	}
	return false
}

type QuestFrequency string

const (
	FrequencyDaily    QuestFrequency = "daily"
	FrequencyWeekly   QuestFrequency = "weekly"
	FrequencyFlexible QuestFrequency = "flexible"
)

func (f QuestFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyFlexible:
		return true
	}
	return false
}

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Profile is the per-user row holding onboarding data and the spark point
// balance. Its ID is the owning user's ID; it is created lazily on first
// authenticated access and never deleted.
type Profile struct {
	ID              uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string                      `json:"name" gorm:"not null"`
	PersonalityType *PersonalityType            `json:"personalityType"`
	CurrentMood     *int                        `json:"currentMood"`
	Goals           datatypes.JSONSlice[string] `json:"goals"`
	QuestFrequency  *QuestFrequency             `json:"questFrequency"`
	DifficultyLevel *DifficultyLevel            `json:"difficultyLevel"`
	Categories      datatypes.JSONSlice[string] `json:"categories"`
	SparkPoints     int                         `json:"sparkPoints" gorm:"not null;default:0"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`
}

// Onboarded reports whether onboarding has completed. A non-null personality
// classification is the sole signal clients use to pick onboarding vs dashboard.
func (p *Profile) Onboarded() bool {
	return p.PersonalityType != nil
}

// Profile DTOs
type OnboardingRequest struct {
	PersonalityType PersonalityType `json:"personalityType"`
	CurrentMood     int             `json:"currentMood"`
	Goals           []string        `json:"goals"`
	QuestFrequency  QuestFrequency  `json:"questFrequency"`
	DifficultyLevel DifficultyLevel `json:"difficultyLevel"`
	Categories      []string        `json:"categories"`
}

type UpdateProfileRequest struct {
	Name            *string          `json:"name"`
	CurrentMood     *int             `json:"currentMood"`
	Goals           *[]string        `json:"goals"`
	QuestFrequency  *QuestFrequency  `json:"questFrequency"`
	DifficultyLevel *DifficultyLevel `json:"difficultyLevel"`
	Categories      *[]string        `json:"categories"`
}
