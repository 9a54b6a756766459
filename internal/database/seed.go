package database

import (
	"log"

	"github.com/sparkquest/sparkquest-api/internal/models"
	"gorm.io/datatypes"
)

// SeedCatalog populates the quest and reward catalogs.
// Idempotent: skips if catalog rows already exist.
func SeedCatalog() error {
	var questCount int64
	if err := DB.Model(&models.Quest{}).Count(&questCount).Error; err != nil {
		return err
	}
	if questCount == 0 {
		quests := questCatalog()
		if err := DB.Create(&quests).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d quests", len(quests))
	}

	var rewardCount int64
	if err := DB.Model(&models.Reward{}).Count(&rewardCount).Error; err != nil {
		return err
	}
	if rewardCount == 0 {
		rewards := rewardCatalog()
		if err := DB.Create(&rewards).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d rewards", len(rewards))
	}

	return nil
}

func questCatalog() []models.Quest {
	return []models.Quest{
		{
			ID:            "adv_daily_1",
			Title:         "Step Outside Your Comfort Zone",
			Description:   "Try something new that challenges you today",
			Category:      "Personal Growth",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  75,
			EstimatedTime: "30 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Think of something you've been wanting to try but haven't yet",
				"Choose one small action you can take today toward that goal",
				"Take that action, no matter how small",
				"Reflect on how it felt to push your boundaries",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"How did stepping outside your comfort zone make you feel?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"adventurous"},
			Tags:              datatypes.JSONSlice[string]{"growth", "challenge", "courage"},
		},
		{
			ID:            "adv_daily_2",
			Title:         "Random Act of Adventure",
			Description:   "Choose a spontaneous activity and embrace the unexpected",
			Category:      "Adventure",
			Difficulty:    models.DifficultyEasy,
			PointsReward:  50,
			EstimatedTime: "20 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Close your eyes and point to a location on a map",
				"Visit that location or research it if it's far away",
				"Find one interesting thing about that place",
				"Plan a future adventure there",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What did you discover that surprised you?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"adventurous"},
			Tags:              datatypes.JSONSlice[string]{"spontaneity", "exploration", "discovery"},
		},
		{
			ID:            "intro_daily_1",
			Title:         "Morning Mindfulness Practice",
			Description:   "Start your day with intentional reflection and awareness",
			Category:      "Self-Reflection",
			Difficulty:    models.DifficultyEasy,
			PointsReward:  60,
			EstimatedTime: "15 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Find a quiet space where you won't be disturbed",
				"Sit comfortably and focus on your breathing for 5 minutes",
				"Ask yourself: \"What am I feeling right now?\" and listen",
				"Write down three things you're grateful for today",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What insights came up during your mindfulness practice?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"introspective"},
			Tags:              datatypes.JSONSlice[string]{"mindfulness", "gratitude", "self-awareness"},
		},
		{
			ID:            "intro_daily_2",
			Title:         "Values Reflection",
			Description:   "Explore what truly matters to you in this moment",
			Category:      "Self-Discovery",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  80,
			EstimatedTime: "25 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"List your top 5 personal values",
				"Think about how you honored these values yesterday",
				"Identify one value you want to focus on more",
				"Plan one specific action to align with that value today",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"Which value feels most important to focus on right now and why?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"introspective"},
			Tags:              datatypes.JSONSlice[string]{"values", "purpose", "alignment"},
		},
		{
			ID:            "social_daily_1",
			Title:         "Meaningful Connection",
			Description:   "Reach out to someone important to you",
			Category:      "Relationships",
			Difficulty:    models.DifficultyEasy,
			PointsReward:  65,
			EstimatedTime: "20 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Think of someone you haven't spoken to in a while",
				"Send them a thoughtful message asking how they're doing",
				"Share something genuine about your current life",
				"Ask them a meaningful question about their life",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"How did reaching out make you feel? What did you learn about your friend?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"social"},
			Tags:              datatypes.JSONSlice[string]{"connection", "friendship", "communication"},
		},
		{
			ID:            "creative_daily_1",
			Title:         "Creative Expression Challenge",
			Description:   "Express yourself through any creative medium",
			Category:      "Creativity",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  70,
			EstimatedTime: "30 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Choose a creative medium (drawing, writing, music, etc.)",
				"Set a timer for 15 minutes",
				"Create something without worrying about perfection",
				"Focus on the process, not the outcome",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What did this creative session reveal about your current state of mind?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"creative"},
			Tags:              datatypes.JSONSlice[string]{"creativity", "expression", "flow"},
		},
		{
			ID:            "analytical_daily_1",
			Title:         "Daily Optimization",
			Description:   "Analyze and improve one aspect of your daily routine",
			Category:      "Self-Improvement",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  75,
			EstimatedTime: "25 minutes",
			Instructions: datatypes.JSONSlice[string]{
				"Identify one daily habit or routine you want to improve",
				"Track this habit for today and note when/how you do it",
				"Analyze what works well and what could be better",
				"Design one small improvement to implement tomorrow",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What patterns did you notice? How might this small change impact your overall well-being?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"analytical"},
			Tags:              datatypes.JSONSlice[string]{"optimization", "habits", "data"},
		},
		{
			ID:            "adv_weekly_1",
			Title:         "Adventure Planning Challenge",
			Description:   "Plan and execute a mini-adventure this week",
			Category:      "Adventure",
			Difficulty:    models.DifficultyHard,
			PointsReward:  200,
			EstimatedTime: "2-3 hours",
			Instructions: datatypes.JSONSlice[string]{
				"Research three new activities available in your area",
				"Choose one that excites and slightly intimidates you",
				"Plan the logistics (when, where, what you need)",
				"Execute your adventure and document the experience",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What did you learn about yourself through this adventure?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"adventurous"},
			Tags:              datatypes.JSONSlice[string]{"adventure", "planning", "courage"},
		},
		{
			ID:            "intro_weekly_1",
			Title:         "Weekly Life Review",
			Description:   "Conduct a deep reflection on your week",
			Category:      "Self-Reflection",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  150,
			EstimatedTime: "1 hour",
			Instructions: datatypes.JSONSlice[string]{
				"Set aside quiet time for uninterrupted reflection",
				"Review each day of the week and note significant moments",
				"Identify patterns in your emotions, behaviors, and thoughts",
				"Set intentions for the coming week based on your insights",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What themes emerged from this week? What would you like to change or continue?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"introspective"},
			Tags:              datatypes.JSONSlice[string]{"reflection", "patterns", "growth"},
		},
		{
			ID:            "social_weekly_1",
			Title:         "Community Connection Project",
			Description:   "Engage with your community in a meaningful way",
			Category:      "Social Impact",
			Difficulty:    models.DifficultyMedium,
			PointsReward:  175,
			EstimatedTime: "2 hours",
			Instructions: datatypes.JSONSlice[string]{
				"Research local community organizations or volunteer opportunities",
				"Choose one that aligns with your values",
				"Reach out and offer your time or skills",
				"Participate in at least one activity or event",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"How did contributing to your community make you feel? What connections did you make?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"social"},
			Tags:              datatypes.JSONSlice[string]{"community", "service", "impact"},
		},
		{
			ID:            "creative_weekly_1",
			Title:         "Creative Project Week",
			Description:   "Start and complete a creative project this week",
			Category:      "Creativity",
			Difficulty:    models.DifficultyHard,
			PointsReward:  250,
			EstimatedTime: "3-4 hours",
			Instructions: datatypes.JSONSlice[string]{
				"Choose a creative project you can complete in a week",
				"Break it down into daily tasks",
				"Work on it a little each day",
				"Share your completed project with someone",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What did the creative process teach you about persistence and expression?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"creative"},
			Tags:              datatypes.JSONSlice[string]{"creativity", "project", "completion"},
		},
		{
			ID:            "analytical_weekly_1",
			Title:         "Personal Metrics Analysis",
			Description:   "Track and analyze personal data for insights",
			Category:      "Self-Analysis",
			Difficulty:    models.DifficultyHard,
			PointsReward:  200,
			EstimatedTime: "2 hours",
			Instructions: datatypes.JSONSlice[string]{
				"Choose 3-5 personal metrics to track (mood, productivity, exercise, etc.)",
				"Track these metrics for the entire week",
				"Create a simple visualization of your data",
				"Identify correlations and patterns",
			},
			ReflectionPrompts: datatypes.JSONSlice[string]{"What surprising patterns did you discover? How can you use this data to improve your life?"},
			PersonalityMatch:  datatypes.JSONSlice[string]{"analytical"},
			Tags:              datatypes.JSONSlice[string]{"data", "analysis", "insights"},
		},
	}
}

func rewardCatalog() []models.Reward {
	return []models.Reward{
		{
			ID:          "profile_boost",
			Title:       "Profile Boost",
			Description: "Increase your profile visibility for 24 hours",
			Cost:        250,
			Category:    models.RewardProfileBoost,
			Icon:        "🚀",
			Available:   true,
		},
		{
			ID:          "conversation_starter",
			Title:       "Exclusive Conversation Starter",
			Description: "Unlock premium conversation prompts",
			Cost:        150,
			Category:    models.RewardExclusiveContent,
			Icon:        "💬",
			Available:   true,
		},
		{
			ID:          "super_like_boost",
			Title:       "Super Like Boost",
			Description: "Get 5 extra super likes for the week",
			Cost:        300,
			Category:    models.RewardSpecialFeatures,
			Icon:        "⭐",
			Available:   true,
		},
		{
			ID:          "mystery_quest",
			Title:       "Mystery Growth Quest",
			Description: "Unlock a special personalized quest",
			Cost:        400,
			Category:    models.RewardExclusiveContent,
			Icon:        "🎯",
			Available:   true,
		},
		{
			ID:          "compatibility_insights",
			Title:       "Advanced Compatibility Insights",
			Description: "Get detailed personality match analysis",
			Cost:        500,
			Category:    models.RewardExclusiveContent,
			Icon:        "🧠",
			Available:   true,
		},
		{
			ID:          "vip_status",
			Title:       "VIP Status (7 days)",
			Description: "Unlock all premium features for a week",
			Cost:        1000,
			Category:    models.RewardSpecialFeatures,
			Icon:        "👑",
			Available:   true,
		},
		{
			ID:          "custom_quest_creator",
			Title:       "Custom Quest Creator",
			Description: "Design your own personalized quests",
			Cost:        750,
			Category:    models.RewardSpecialFeatures,
			Icon:        "🎨",
			Available:   true,
			MinBalance:  750,
		},
		{
			ID:          "legendary_box",
			Title:       "Legendary Surprise Box",
			Description: "Unlock exclusive mystery rewards",
			Cost:        2000,
			Category:    models.RewardExclusiveContent,
			Icon:        "🎁",
			Available:   true,
			MinBalance:  2000,
		},
	}
}
