package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity action types.
const (
	ActionQuestCompleted  = "quest_completed"
	ActionRewardPurchased = "reward_purchased"
)

// Activity is a per-user timeline entry recording a point-affecting event.
// Points carries the signed balance delta of the event.
type Activity struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	ActionType string    `json:"actionType" gorm:"not null"`
	TargetID   *string   `json:"targetId"`
	Points     int       `json:"points" gorm:"not null;default:0"`
	Metadata   *string   `json:"metadata"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
