package models

import (
	"time"

	"gorm.io/datatypes"
)

// Quest is a catalog entry. Catalog rows are seeded with stable string IDs and
// are immutable at runtime.
type Quest struct {
	ID                string                      `json:"id" gorm:"primaryKey"`
	Title             string                      `json:"title" gorm:"not null"`
	Description       string                      `json:"description"`
	Category          string                      `json:"category" gorm:"not null"`
	Difficulty        DifficultyLevel             `json:"difficulty" gorm:"not null"`
	PointsReward      int                         `json:"pointsReward" gorm:"not null"`
	EstimatedTime     string                      `json:"estimatedTime"`
	Instructions      datatypes.JSONSlice[string] `json:"instructions"`
	ReflectionPrompts datatypes.JSONSlice[string] `json:"reflectionPrompts"`
	PersonalityMatch  datatypes.JSONSlice[string] `json:"personalityMatch"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt         time.Time                   `json:"createdAt"`
}
