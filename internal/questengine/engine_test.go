package questengine

import (
	"testing"

	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testCatalog() []models.Quest {
	return []models.Quest{
		{
			ID:               "adv_1",
			Category:         "Adventure",
			Difficulty:       models.DifficultyEasy,
			PersonalityMatch: datatypes.JSONSlice[string]{"adventurous"},
			Tags:             datatypes.JSONSlice[string]{"exploration", "courage"},
		},
		{
			ID:               "adv_2",
			Category:         "Personal Growth",
			Difficulty:       models.DifficultyMedium,
			PersonalityMatch: datatypes.JSONSlice[string]{"adventurous"},
			Tags:             datatypes.JSONSlice[string]{"growth"},
		},
		{
			ID:               "intro_1",
			Category:         "Self-Reflection",
			Difficulty:       models.DifficultyEasy,
			PersonalityMatch: datatypes.JSONSlice[string]{"introspective"},
			Tags:             datatypes.JSONSlice[string]{"mindfulness"},
		},
		{
			ID:               "creative_1",
			Category:         "Creativity",
			Difficulty:       models.DifficultyHard,
			PersonalityMatch: datatypes.JSONSlice[string]{"creative"},
			Tags:             datatypes.JSONSlice[string]{"expression"},
		},
	}
}

func profileWith(personality models.PersonalityType, difficulty models.DifficultyLevel, categories ...string) *models.Profile {
	return &models.Profile{
		PersonalityType: &personality,
		DifficultyLevel: &difficulty,
		Categories:      datatypes.JSONSlice[string](categories),
	}
}

func questIDs(quests []models.Quest) []string {
	ids := make([]string, 0, len(quests))
	for _, q := range quests {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestPersonalized_PersonalityMatchesFirst(t *testing.T) {
	t.Parallel()
	profile := profileWith(models.PersonalityAdventurous, models.DifficultyMedium, "creativity")

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	// Both adventurous quests come first, then the category match.
	assert.Equal(t, []string{"adv_1", "adv_2", "creative_1"}, questIDs(got))
}

func TestPersonalized_Deterministic(t *testing.T) {
	t.Parallel()
	profile := profileWith(models.PersonalityAdventurous, models.DifficultyMedium, "creativity", "adventure")

	first := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)
	second := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	assert.Equal(t, questIDs(first), questIDs(second))
}

func TestPersonalized_DedupeFirstOccurrenceWins(t *testing.T) {
	t.Parallel()
	// "adventure" interest re-matches adv_1 by category; it must not repeat.
	profile := profileWith(models.PersonalityAdventurous, models.DifficultyMedium, "adventure")

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	assert.Equal(t, []string{"adv_1", "adv_2"}, questIDs(got))
}

func TestPersonalized_EasyPreferenceFiltersExactDifficulty(t *testing.T) {
	t.Parallel()
	profile := profileWith(models.PersonalityAdventurous, models.DifficultyEasy, "creativity")

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "adv_1", got[0].ID)
	for _, q := range got {
		assert.Equal(t, models.DifficultyEasy, q.Difficulty)
	}
}

func TestPersonalized_HardPreferenceFiltersExactDifficulty(t *testing.T) {
	t.Parallel()
	profile := profileWith(models.PersonalityCreative, models.DifficultyHard)

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "creative_1", got[0].ID)
}

func TestPersonalized_Truncation(t *testing.T) {
	t.Parallel()
	// Interest matches everything via category names, plus personality matches.
	profile := profileWith(models.PersonalityAdventurous, models.DifficultyMedium,
		"adventure", "self-reflection", "creativity", "personal growth")

	daily := Personalized(testCatalog(), profile, models.FrequencyDaily, 0)
	assert.Len(t, daily, 3)

	weekly := Personalized(testCatalog(), profile, models.FrequencyWeekly, 0)
	assert.Len(t, weekly, 2)

	limited := Personalized(testCatalog(), profile, models.FrequencyFlexible, 1)
	assert.Len(t, limited, 1)
}

func TestPersonalized_NoPersonalityFallsBackToInterests(t *testing.T) {
	t.Parallel()
	difficulty := models.DifficultyMedium
	profile := &models.Profile{
		DifficultyLevel: &difficulty,
		Categories:      datatypes.JSONSlice[string]{"creativity"},
	}

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	assert.Equal(t, []string{"creative_1"}, questIDs(got))
}

func TestPersonalized_InterestContainsTag(t *testing.T) {
	t.Parallel()
	// "mindfulness practice" contains the tag "mindfulness".
	personality := models.PersonalityAnalytical
	profile := &models.Profile{
		PersonalityType: &personality,
		Categories:      datatypes.JSONSlice[string]{"mindfulness practice"},
	}

	got := Personalized(testCatalog(), profile, models.FrequencyFlexible, 0)

	assert.Equal(t, []string{"intro_1"}, questIDs(got))
}

func TestPersonalized_EmptyProfile(t *testing.T) {
	t.Parallel()
	got := Personalized(testCatalog(), &models.Profile{}, models.FrequencyFlexible, 0)
	assert.Empty(t, got)
}
