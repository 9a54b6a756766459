package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sparkquest/sparkquest-api/internal/errs"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAssignQuest(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	profiles := NewProfileService(db)
	userID := uuid.New()
	_, err := profiles.EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	userQuest, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, userQuest.Status)
	assert.Equal(t, "q1", userQuest.QuestID)
	assert.False(t, userQuest.AssignedAt.IsZero())
	require.NotNil(t, userQuest.Quest)
	assert.Equal(t, 75, userQuest.Quest.PointsReward)
}

func TestAssignQuest_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	_, err = svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	_, err = svc.AssignQuest(userID, "q1")
	assert.ErrorIs(t, err, errs.ErrAlreadyAssigned)

	var count int64
	require.NoError(t, db.Model(&models.UserQuest{}).
		Where("user_id = ? AND quest_id = ?", userID, "q1").
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAssignQuest_UnknownQuest(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)

	_, err := svc.AssignQuest(uuid.New(), "does-not-exist")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStartQuest(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	started, err := svc.StartQuest(userID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, started.Status)

	// Starting again is a no-op.
	again, err := svc.StartQuest(userID, assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, again.Status)

	// A foreign user cannot see the assignment.
	_, err = svc.StartQuest(uuid.New(), assigned.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestStartQuest_CompletedConcurrently(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	// A second session completes the quest between StartQuest's read and its
	// status write. The write must not regress the terminal status.
	var once bool
	err = db.Callback().Update().Before("gorm:update").Register("complete_between", func(tx *gorm.DB) {
		if once || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "user_quests" {
			return
		}
		once = true
		_, err := svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
			ReflectionText: "Finished this one from another session.",
		})
		require.NoError(t, err)
	})
	require.NoError(t, err)

	_, err = svc.StartQuest(userID, assigned.ID)
	assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)

	var userQuest models.UserQuest
	require.NoError(t, db.First(&userQuest, "id = ?", assigned.ID).Error)
	assert.Equal(t, models.StatusCompleted, userQuest.Status)
	require.NotNil(t, userQuest.CompletedAt)

	// The terminal status held, so a repeat completion cannot credit again.
	_, err = svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
		ReflectionText: "Trying to complete the quest once more.",
	})
	assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	assert.Equal(t, 175, balance(t, db, userID))
}

func TestCompleteQuest_AwardsPointsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	mood := 8
	result, err := svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
		ReflectionText: "This pushed me well outside my routine.",
		ReflectionMood: &mood,
	})
	require.NoError(t, err)

	assert.Equal(t, 75, result.PointsAwarded)
	assert.Equal(t, models.StatusCompleted, result.UserQuest.Status)
	require.NotNil(t, result.UserQuest.CompletedAt)
	// New user: welcome bonus 100 + 75 reward.
	assert.Equal(t, 175, balance(t, db, userID))

	// Second completion must not credit again.
	_, err = svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
		ReflectionText: "Trying to double dip on the reward here.",
	})
	assert.ErrorIs(t, err, errs.ErrAlreadyCompleted)
	assert.Equal(t, 175, balance(t, db, userID))

	// Exactly one completion activity recorded.
	var activities int64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("user_id = ? AND action_type = ?", userID, models.ActionQuestCompleted).
		Count(&activities).Error)
	assert.EqualValues(t, 1, activities)
}

func TestCompleteQuest_ReflectionGate(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	// Too short, and whitespace padding must not count.
	for _, reflection := range []string{"", "short", "   hi     "} {
		_, err = svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
			ReflectionText: reflection,
		})
		assert.ErrorIs(t, err, errs.ErrReflectionTooShort)
	}

	// No state change: assignment still open, balance untouched.
	var userQuest models.UserQuest
	require.NoError(t, db.First(&userQuest, "id = ?", assigned.ID).Error)
	assert.Equal(t, models.StatusAssigned, userQuest.Status)
	assert.Nil(t, userQuest.CompletedAt)
	assert.Equal(t, 100, balance(t, db, userID))
}

func TestCompleteQuest_InvalidMood(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(userID, "q1")
	require.NoError(t, err)

	mood := 0
	_, err = svc.CompleteQuest(userID, assigned.ID, models.CompleteQuestRequest{
		ReflectionText: "A perfectly valid reflection text.",
		ReflectionMood: &mood,
	})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestCompleteQuest_NotOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	owner := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(owner, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)

	assigned, err := svc.AssignQuest(owner, "q1")
	require.NoError(t, err)

	_, err = svc.CompleteQuest(uuid.New(), assigned.ID, models.CompleteQuestRequest{
		ReflectionText: "Not my quest but worth a try anyway.",
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestListUserQuests(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	userID := uuid.New()
	_, err := NewProfileService(db).EnsureProfile(userID, "casey")
	require.NoError(t, err)
	createQuest(t, db, "q1", 75)
	createQuest(t, db, "q2", 50)

	_, err = svc.AssignQuest(userID, "q1")
	require.NoError(t, err)
	_, err = svc.AssignQuest(userID, "q2")
	require.NoError(t, err)

	ledger, err := svc.ListUserQuests(userID)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	for _, uq := range ledger {
		require.NotNil(t, uq.Quest, "quest should be preloaded")
	}
}

func TestPersonalized_UsesProfilePreferences(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)
	profiles := NewProfileService(db)
	userID := uuid.New()
	_, err := profiles.EnsureProfile(userID, "casey")
	require.NoError(t, err)

	quest := createQuest(t, db, "q1", 75)
	quest.PersonalityMatch = []string{"introspective"}
	require.NoError(t, db.Save(&quest).Error)

	_, err = profiles.CompleteOnboarding(userID, models.OnboardingRequest{
		PersonalityType: models.PersonalityIntrospective,
		CurrentMood:     6,
		QuestFrequency:  models.FrequencyDaily,
		DifficultyLevel: models.DifficultyMedium,
		Categories:      []string{"mindfulness"},
	})
	require.NoError(t, err)

	got, err := svc.Personalized(userID, "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "q1", got[0].ID)
}

func TestPersonalized_ProfileMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestService(db)

	_, err := svc.Personalized(uuid.New(), models.FrequencyDaily, 0)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
