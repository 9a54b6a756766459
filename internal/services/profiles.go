package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sparkquest/sparkquest-api/internal/errs"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"gorm.io/gorm"
)

// WelcomeBonus is the spark point balance every new profile starts with.
const WelcomeBonus = 100

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// EnsureProfile returns the user's profile, creating it with the welcome bonus
// if it does not exist yet. Creation is idempotent under a race: the profile's
// primary key is the user id, so a concurrent insert surfaces as a duplicate
// key and the existing row is fetched and returned instead.
func (s *ProfileService) EnsureProfile(userID uuid.UUID, fallbackName string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.First(&profile, "id = ?", userID).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if fallbackName == "" {
		fallbackName = "New User"
	}
	profile = models.Profile{
		ID:          userID,
		Name:        fallbackName,
		SparkPoints: WelcomeBonus,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the bootstrap race; the row that won is authoritative.
			var existing models.Profile
			if err := s.db.First(&existing, "id = ?", userID).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}

	slog.Info("profile created",
		slog.String("user_id", userID.String()),
		slog.Int("spark_points", WelcomeBonus))
	return &profile, nil
}

// GetProfile fetches the profile without creating it.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// CompleteOnboarding records the personality classification, mood, goals and
// preferences. It never touches the point balance. After a successful call the
// profile's personality classification is non-null.
func (s *ProfileService) CompleteOnboarding(userID uuid.UUID, req models.OnboardingRequest) (*models.Profile, error) {
	if !req.PersonalityType.Valid() {
		return nil, fmt.Errorf("%w: unknown personality type %q", errs.ErrValidation, req.PersonalityType)
	}
	if req.CurrentMood < 1 || req.CurrentMood > 10 {
		return nil, fmt.Errorf("%w: mood must be between 1 and 10", errs.ErrValidation)
	}
	if len(req.Categories) == 0 {
		return nil, fmt.Errorf("%w: at least one interest category is required", errs.ErrValidation)
	}
	if !req.QuestFrequency.Valid() {
		return nil, fmt.Errorf("%w: unknown quest frequency %q", errs.ErrValidation, req.QuestFrequency)
	}
	if !req.DifficultyLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty level %q", errs.ErrValidation, req.DifficultyLevel)
	}

	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.PersonalityType = &req.PersonalityType
	profile.CurrentMood = &req.CurrentMood
	profile.Goals = req.Goals
	profile.QuestFrequency = &req.QuestFrequency
	profile.DifficultyLevel = &req.DifficultyLevel
	profile.Categories = req.Categories

	// Column-scoped write: spark_points is credited with server-side
	// increments elsewhere, so writing the balance read above would lose a
	// concurrent credit.
	err = s.db.Model(profile).
		Select("personality_type", "current_mood", "goals", "quest_frequency", "difficulty_level", "categories").
		Updates(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateProfile applies a partial update. Onboarding fields keep their closed
// enums; the balance is not updatable here.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		profile.Name = *req.Name
	}
	if req.CurrentMood != nil {
		if *req.CurrentMood < 1 || *req.CurrentMood > 10 {
			return nil, fmt.Errorf("%w: mood must be between 1 and 10", errs.ErrValidation)
		}
		profile.CurrentMood = req.CurrentMood
	}
	if req.Goals != nil {
		profile.Goals = *req.Goals
	}
	if req.QuestFrequency != nil {
		if !req.QuestFrequency.Valid() {
			return nil, fmt.Errorf("%w: unknown quest frequency %q", errs.ErrValidation, *req.QuestFrequency)
		}
		profile.QuestFrequency = req.QuestFrequency
	}
	if req.DifficultyLevel != nil {
		if !req.DifficultyLevel.Valid() {
			return nil, fmt.Errorf("%w: unknown difficulty level %q", errs.ErrValidation, *req.DifficultyLevel)
		}
		profile.DifficultyLevel = req.DifficultyLevel
	}
	if req.Categories != nil {
		if len(*req.Categories) == 0 {
			return nil, fmt.Errorf("%w: at least one interest category is required", errs.ErrValidation)
		}
		profile.Categories = *req.Categories
	}

	// Same column scoping as onboarding: never push back the balance.
	err = s.db.Model(profile).
		Select("name", "current_mood", "goals", "quest_frequency", "difficulty_level", "categories").
		Updates(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}
