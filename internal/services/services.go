// Package services implements the quest/reward workflow: profile bootstrap,
// onboarding, quest assignment and completion, and reward redemption. Every
// balance mutation goes through a service operation; handlers never compute a
// new balance themselves.
package services

import "gorm.io/gorm"

// Global service instances, wired once at startup.
var (
	Profiles *ProfileService
	Quests   *QuestService
	Rewards  *RewardService
)

// Init constructs the global services over the given database handle.
func Init(db *gorm.DB) {
	Profiles = NewProfileService(db)
	Quests = NewQuestService(db)
	Rewards = NewRewardService(db)
}
