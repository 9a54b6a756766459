package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sparkquest/sparkquest-api/internal/errs"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/sparkquest/sparkquest-api/internal/questengine"
	"gorm.io/gorm"
)

// MinReflectionLength is the minimum reflection size required to complete a
// quest, re-validated here so a bypassed client cannot earn points without one.
const MinReflectionLength = 10

type QuestService struct {
	db *gorm.DB
}

func NewQuestService(db *gorm.DB) *QuestService {
	return &QuestService{db: db}
}

// ListQuests returns the full catalog, newest first.
func (s *QuestService) ListQuests() ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.db.Order("created_at DESC").Find(&quests).Error; err != nil {
		return nil, err
	}
	return quests, nil
}

// Personalized returns a bounded candidate set for the user. An empty
// frequency falls back to the profile's own cadence preference.
func (s *QuestService) Personalized(userID uuid.UUID, frequency models.QuestFrequency, limit int) ([]models.Quest, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if frequency == "" && profile.QuestFrequency != nil {
		frequency = *profile.QuestFrequency
	}

	catalog, err := s.ListQuests()
	if err != nil {
		return nil, err
	}
	return questengine.Personalized(catalog, &profile, frequency, limit), nil
}

// ListUserQuests returns the user's assignment ledger, newest first, with
// catalog quests preloaded.
func (s *QuestService) ListUserQuests(userID uuid.UUID) ([]models.UserQuest, error) {
	var userQuests []models.UserQuest
	err := s.db.Where("user_id = ?", userID).
		Preload("Quest").
		Order("assigned_at DESC").
		Find(&userQuests).Error
	if err != nil {
		return nil, err
	}
	return userQuests, nil
}

// AssignQuest creates an assignment for (user, quest). Policy is fail on
// duplicate: a second assignment for the same pair returns ErrAlreadyAssigned
// regardless of its status. The unique index backstops the check under races.
func (s *QuestService) AssignQuest(userID uuid.UUID, questID string) (*models.UserQuest, error) {
	var quest models.Quest
	if err := s.db.First(&quest, "id = ?", questID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	var existing models.UserQuest
	err := s.db.Where("user_id = ? AND quest_id = ?", userID, questID).First(&existing).Error
	if err == nil {
		return nil, errs.ErrAlreadyAssigned
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userQuest := models.UserQuest{
		UserID:     userID,
		QuestID:    questID,
		Status:     models.StatusAssigned,
		AssignedAt: time.Now(),
	}
	if err := s.db.Create(&userQuest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrAlreadyAssigned
		}
		return nil, err
	}
	userQuest.Quest = &quest

	slog.Info("quest assigned",
		slog.String("user_id", userID.String()),
		slog.String("quest_id", questID))
	return &userQuest, nil
}

// StartQuest moves an assignment to in_progress. Starting an already started
// quest is a no-op; a completed quest cannot regress.
func (s *QuestService) StartQuest(userID, userQuestID uuid.UUID) (*models.UserQuest, error) {
	userQuest, err := s.getUserQuest(userID, userQuestID)
	if err != nil {
		return nil, err
	}

	switch userQuest.Status {
	case models.StatusCompleted:
		return nil, errs.ErrAlreadyCompleted
	case models.StatusInProgress:
		return userQuest, nil
	}

	// Guarded write: only an assigned row may advance. Zero rows affected
	// means another session moved it on since the read above.
	res := s.db.Model(&models.UserQuest{}).
		Where("id = ? AND status = ?", userQuestID, models.StatusAssigned).
		Update("status", models.StatusInProgress)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		userQuest, err = s.getUserQuest(userID, userQuestID)
		if err != nil {
			return nil, err
		}
		if userQuest.Status == models.StatusCompleted {
			return nil, errs.ErrAlreadyCompleted
		}
		return userQuest, nil
	}

	userQuest.Status = models.StatusInProgress
	return userQuest, nil
}

// CompleteQuest marks the assignment completed and credits the quest's point
// reward, as a single transactional unit. The status flip is a guarded update
// (only a non-completed row matches) and the credit is a server-side increment,
// so concurrent completions from two sessions cannot double-credit or lose an
// update.
func (s *QuestService) CompleteQuest(userID, userQuestID uuid.UUID, req models.CompleteQuestRequest) (*models.CompleteQuestResponse, error) {
	reflection := strings.TrimSpace(req.ReflectionText)
	if utf8.RuneCountInString(reflection) < MinReflectionLength {
		return nil, errs.ErrReflectionTooShort
	}
	if req.ReflectionMood != nil && (*req.ReflectionMood < 1 || *req.ReflectionMood > 10) {
		return nil, fmt.Errorf("%w: reflection mood must be between 1 and 10", errs.ErrValidation)
	}

	userQuest, err := s.getUserQuest(userID, userQuestID)
	if err != nil {
		return nil, err
	}
	if userQuest.Status == models.StatusCompleted {
		return nil, errs.ErrAlreadyCompleted
	}
	if userQuest.Quest == nil {
		return nil, fmt.Errorf("quest %s missing from catalog", userQuest.QuestID)
	}
	points := userQuest.Quest.PointsReward

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.UserQuest{}).
			Where("id = ? AND status <> ?", userQuestID, models.StatusCompleted).
			Updates(map[string]interface{}{
				"status":          models.StatusCompleted,
				"completed_at":    now,
				"reflection_text": reflection,
				"reflection_mood": req.ReflectionMood,
				"insights":        req.Insights,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Another session completed it between the read and the update.
			return errs.ErrAlreadyCompleted
		}

		credit := tx.Model(&models.Profile{}).
			Where("id = ?", userID).
			UpdateColumn("spark_points", gorm.Expr("spark_points + ?", points))
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return fmt.Errorf("profile %s missing for point credit: %w", userID, errs.ErrNotFound)
		}

		questID := userQuest.QuestID
		return tx.Create(&models.Activity{
			UserID:     userID,
			ActionType: models.ActionQuestCompleted,
			TargetID:   &questID,
			Points:     points,
		}).Error
	})
	if err != nil {
		if !errors.Is(err, errs.ErrAlreadyCompleted) {
			// The whole unit rolled back: completion and credit stay
			// consistent, the caller may retry.
			slog.Error("quest completion failed",
				slog.String("user_id", userID.String()),
				slog.String("user_quest_id", userQuestID.String()),
				slog.Any("error", err))
		}
		return nil, err
	}

	userQuest.Status = models.StatusCompleted
	userQuest.CompletedAt = &now
	userQuest.ReflectionText = &reflection
	userQuest.ReflectionMood = req.ReflectionMood
	userQuest.Insights = req.Insights

	slog.Info("quest completed",
		slog.String("user_id", userID.String()),
		slog.String("quest_id", userQuest.QuestID),
		slog.Int("points_awarded", points))
	return &models.CompleteQuestResponse{UserQuest: userQuest, PointsAwarded: points}, nil
}

func (s *QuestService) getUserQuest(userID, userQuestID uuid.UUID) (*models.UserQuest, error) {
	var userQuest models.UserQuest
	err := s.db.Where("id = ? AND user_id = ?", userQuestID, userID).
		Preload("Quest").
		First(&userQuest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &userQuest, nil
}
