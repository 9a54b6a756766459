package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RewardCategory string

const (
	RewardProfileBoost     RewardCategory = "profile_boost"
	RewardExclusiveContent RewardCategory = "exclusive_content"
	RewardSpecialFeatures  RewardCategory = "special_features"
)

// Reward is a purchasable catalog entry. MinBalance > 0 marks a premium reward
// that stays locked until the user's balance reaches it.
type Reward struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Cost        int            `json:"cost" gorm:"not null"`
	Category    RewardCategory `json:"category" gorm:"not null"`
	Icon        string         `json:"icon"`
	Available   bool           `json:"available" gorm:"not null;default:true"`
	MinBalance  int            `json:"minBalance" gorm:"not null;default:0"`
}

// Unlocked evaluates the availability predicate against a current balance.
func (r *Reward) Unlocked(balance int) bool {
	return r.Available && balance >= r.MinBalance
}

// UserReward is the append-only purchase audit record.
type UserReward struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	RewardID    string    `json:"rewardId" gorm:"not null"`
	PurchasedAt time.Time `json:"purchasedAt" gorm:"not null"`
	Reward      *Reward   `json:"reward,omitempty" gorm:"foreignKey:RewardID"`
}

func (ur *UserReward) BeforeCreate(tx *gorm.DB) error {
	if ur.ID == uuid.Nil {
		ur.ID = uuid.New()
	}
	return nil
}

// RewardView is a catalog entry with the availability predicate evaluated for
// the requesting user.
type RewardView struct {
	Reward
	Locked bool `json:"locked"`
}
