package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestStatus transitions monotonically: assigned -> in_progress -> completed.
type QuestStatus string

const (
	StatusAssigned   QuestStatus = "assigned"
	StatusInProgress QuestStatus = "in_progress"
	StatusCompleted  QuestStatus = "completed"
)

// UserQuest links a user to a catalog quest and tracks its lifecycle. The
// composite unique index enforces at most one assignment per (user, quest).
type UserQuest struct {
	ID             uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID   `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_quest"`
	QuestID        string      `json:"questId" gorm:"not null;uniqueIndex:idx_user_quest"`
	Status         QuestStatus `json:"status" gorm:"not null;default:'assigned'"`
	AssignedAt     time.Time   `json:"assignedAt" gorm:"not null"`
	CompletedAt    *time.Time  `json:"completedAt"`
	ReflectionText *string     `json:"reflectionText"`
	ReflectionMood *int        `json:"reflectionMood"`
	Insights       *string     `json:"insights"`
	Quest          *Quest      `json:"quest,omitempty" gorm:"foreignKey:QuestID"`
}

func (uq *UserQuest) BeforeCreate(tx *gorm.DB) error {
	if uq.ID == uuid.Nil {
		uq.ID = uuid.New()
	}
	return nil
}

// Quest workflow DTOs
type AssignQuestRequest struct {
	QuestID string `json:"questId" validate:"required"`
}

type CompleteQuestRequest struct {
	ReflectionText string  `json:"reflectionText"`
	ReflectionMood *int    `json:"reflectionMood"`
	Insights       *string `json:"insights"`
}

type CompleteQuestResponse struct {
	UserQuest     *UserQuest `json:"userQuest"`
	PointsAwarded int        `json:"pointsAwarded"`
}
