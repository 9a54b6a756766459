// Package questengine selects a bounded set of catalog quests for a profile.
// Selection is a pure function of (catalog, profile): no storage access, no
// randomness, stable output order.
package questengine

import (
	"strings"

	"github.com/sparkquest/sparkquest-api/internal/models"
)

// DefaultDiscoveryLimit bounds ad hoc discovery lists when no cadence applies.
const DefaultDiscoveryLimit = 6

// Personalized partitions the catalog into quests matching the profile's
// personality classification and quests whose category or tags intersect the
// profile's interest categories, unions the two (personality matches first,
// first occurrence wins), applies the difficulty preference, and truncates:
// 3 for daily cadence, 2 for weekly, otherwise limit (or DefaultDiscoveryLimit).
func Personalized(catalog []models.Quest, profile *models.Profile, frequency models.QuestFrequency, limit int) []models.Quest {
	var candidates []models.Quest
	seen := make(map[string]bool)

	if profile.PersonalityType != nil {
		for _, q := range catalog {
			if matchesPersonality(q, *profile.PersonalityType) && !seen[q.ID] {
				candidates = append(candidates, q)
				seen[q.ID] = true
			}
		}
	}

	for _, q := range catalog {
		if matchesInterests(q, profile.Categories) && !seen[q.ID] {
			candidates = append(candidates, q)
			seen[q.ID] = true
		}
	}

	candidates = filterDifficulty(candidates, profile.DifficultyLevel)

	count := questCount(frequency, limit)
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

func matchesPersonality(q models.Quest, personality models.PersonalityType) bool {
	for _, m := range q.PersonalityMatch {
		if m == string(personality) {
			return true
		}
	}
	return false
}

// matchesInterests mirrors the display-side matching rule: the quest category
// contains an interest, or an interest contains one of the quest's tags,
// case-insensitively.
func matchesInterests(q models.Quest, categories []string) bool {
	questCategory := strings.ToLower(q.Category)
	for _, cat := range categories {
		interest := strings.ToLower(cat)
		if strings.Contains(questCategory, interest) {
			return true
		}
		for _, tag := range q.Tags {
			if strings.Contains(interest, strings.ToLower(tag)) {
				return true
			}
		}
	}
	return false
}

// filterDifficulty keeps only the exact difficulty for an easy or hard
// preference. A medium (or absent) preference accepts all difficulties.
func filterDifficulty(quests []models.Quest, pref *models.DifficultyLevel) []models.Quest {
	if pref == nil || *pref == models.DifficultyMedium {
		return quests
	}
	filtered := quests[:0]
	for _, q := range quests {
		if q.Difficulty == *pref {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

func questCount(frequency models.QuestFrequency, limit int) int {
	switch frequency {
	case models.FrequencyDaily:
		return 3
	case models.FrequencyWeekly:
		return 2
	}
	if limit > 0 {
		return limit
	}
	return DefaultDiscoveryLimit
}
