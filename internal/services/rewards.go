package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sparkquest/sparkquest-api/internal/errs"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"gorm.io/gorm"
)

type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

// ListRewards returns the catalog with the availability predicate evaluated
// against the user's current balance.
func (s *RewardService) ListRewards(userID uuid.UUID) ([]models.RewardView, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	var rewards []models.Reward
	if err := s.db.Order("cost ASC").Find(&rewards).Error; err != nil {
		return nil, err
	}

	views := make([]models.RewardView, 0, len(rewards))
	for _, r := range rewards {
		views = append(views, models.RewardView{
			Reward: r,
			Locked: !r.Unlocked(profile.SparkPoints),
		})
	}
	return views, nil
}

// ListPurchases returns the user's purchase history, newest first.
func (s *RewardService) ListPurchases(userID uuid.UUID) ([]models.UserReward, error) {
	var purchases []models.UserReward
	err := s.db.Where("user_id = ?", userID).
		Preload("Reward").
		Order("purchased_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

// PurchaseReward debits the reward's cost and records the purchase. Both the
// availability rule and the balance are re-checked at purchase time; a stale
// catalog view cannot cause an overdraft because the debit itself is
// conditional on the balance covering the cost.
func (s *RewardService) PurchaseReward(userID uuid.UUID, rewardID string) (*models.UserReward, error) {
	var reward models.Reward
	if err := s.db.First(&reward, "id = ?", rewardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if !reward.Unlocked(profile.SparkPoints) {
		return nil, errs.ErrRewardLocked
	}

	purchase := models.UserReward{
		UserID:      userID,
		RewardID:    reward.ID,
		PurchasedAt: time.Now(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&models.Profile{}).
			Where("id = ? AND spark_points >= ?", userID, reward.Cost).
			UpdateColumn("spark_points", gorm.Expr("spark_points - ?", reward.Cost))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			// Balance no longer covers the cost (or changed under us).
			return errs.ErrInsufficientPoints
		}

		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		rewardID := reward.ID
		return tx.Create(&models.Activity{
			UserID:     userID,
			ActionType: models.ActionRewardPurchased,
			TargetID:   &rewardID,
			Points:     -reward.Cost,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	purchase.Reward = &reward

	slog.Info("reward purchased",
		slog.String("user_id", userID.String()),
		slog.String("reward_id", reward.ID),
		slog.Int("cost", reward.Cost))
	return &purchase, nil
}
