// Package bank holds the static fallback question catalog: categorized,
// difficulty-tagged questions with optional follow-ups and relevance
// keywords. It is the data source when the remote generator is unavailable
// or switched off.
package bank

import "github.com/zochlan/interview-coach/pkg/model"

var catalog = map[model.Category][]model.InterviewQuestion{
	model.CategoryIntroductory: {
		{
			ID:         "intro-1",
			Text:       "Can you tell me a bit about yourself and your professional journey so far?",
			Category:   model.CategoryIntroductory,
			Difficulty: model.DifficultyEasy,
			FollowUpQuestions: []string{
				"What part of that journey are you most proud of?",
			},
		},
		{
			ID:         "intro-2",
			Text:       "What attracted you to this field, and what keeps you motivated in it?",
			Category:   model.CategoryIntroductory,
			Difficulty: model.DifficultyEasy,
		},
		{
			ID:         "intro-3",
			Text:       "How would your colleagues describe your working style?",
			Category:   model.CategoryIntroductory,
			Difficulty: model.DifficultyEasy,
			FollowUpQuestions: []string{
				"Can you give an example of that working style in practice?",
			},
		},
		{
			ID:         "intro-4",
			Text:       "What does an ideal work environment look like for you?",
			Category:   model.CategoryIntroductory,
			Difficulty: model.DifficultyEasy,
		},
		{
			ID:         "intro-5",
			Text:       "What are you looking for in your next role?",
			Category:   model.CategoryIntroductory,
			Difficulty: model.DifficultyMedium,
		},
	},
	model.CategoryBehavioral: {
		{
			ID:         "behav-1",
			Text:       "Tell me about a time you had to work under pressure to meet a deadline.",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"deadline", "pressure", "prioritization"},
			FollowUpQuestions: []string{
				"What would you do differently if you faced that deadline again?",
			},
		},
		{
			ID:         "behav-2",
			Text:       "Describe a situation where you had a conflict with a team member. How did you handle it?",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"conflict-resolution", "teamwork", "communication"},
			FollowUpQuestions: []string{
				"How did that experience change the way you work with others?",
			},
		},
		{
			ID:         "behav-3",
			Text:       "Give me an example of a goal you set for yourself and how you achieved it.",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyEasy,
			Keywords:   []string{"achievement", "planning"},
		},
		{
			ID:         "behav-4",
			Text:       "Tell me about a time you received difficult feedback. How did you respond?",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"feedback", "learning"},
			FollowUpQuestions: []string{
				"What did you change as a result of that feedback?",
			},
		},
		{
			ID:         "behav-5",
			Text:       "Describe a project that didn't go as planned. What happened and what did you learn?",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyHard,
			Keywords:   []string{"project", "problem-solving", "learning"},
			FollowUpQuestions: []string{
				"What early warning signs would you watch for next time?",
			},
		},
		{
			ID:                 "behav-6",
			Text:               "Tell me about a time you had to lead a team through a difficult period.",
			Category:           model.CategoryBehavioral,
			Difficulty:         model.DifficultyHard,
			Keywords:           []string{"leadership", "teamwork"},
			RequiresExperience: true,
		},
		{
			ID:         "behav-7",
			Text:       "Describe a situation where you had to learn something new very quickly.",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyEasy,
			Keywords:   []string{"learning", "adaptability"},
		},
		{
			ID:         "behav-8",
			Text:       "Tell me about a time you had to juggle several competing priorities.",
			Category:   model.CategoryBehavioral,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"prioritization", "deadline"},
		},
		{
			ID:                 "behav-9",
			Text:               "Give me an example of a decision you made with incomplete information.",
			Category:           model.CategoryBehavioral,
			Difficulty:         model.DifficultyHard,
			Keywords:           []string{"decision-making", "problem-solving"},
			RequiresExperience: true,
		},
	},
	model.CategoryTechnical: {
		{
			ID:         "tech-1",
			Text:       "Walk me through how you would approach debugging an issue you've never seen before.",
			Category:   model.CategoryTechnical,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"debugging", "problem-solving"},
			FollowUpQuestions: []string{
				"Can you describe a specific bug where that approach paid off?",
			},
		},
		{
			ID:         "tech-2",
			Text:       "How do you decide when code is well tested enough to ship?",
			Category:   model.CategoryTechnical,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"testing", "quality"},
		},
		{
			ID:         "tech-3",
			Text:       "Tell me about a technically challenging project you worked on. What made it hard?",
			Category:   model.CategoryTechnical,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"project", "technical", "coding"},
			FollowUpQuestions: []string{
				"Which part of that solution are you most proud of?",
			},
		},
		{
			ID:                 "tech-4",
			Text:               "How would you design a system that needs to stay available while a dependency is failing?",
			Category:           model.CategoryTechnical,
			Difficulty:         model.DifficultyHard,
			Keywords:           []string{"architecture", "system", "technical"},
			RequiresExperience: true,
		},
		{
			ID:         "tech-5",
			Text:       "How do you keep your technical skills current?",
			Category:   model.CategoryTechnical,
			Difficulty: model.DifficultyEasy,
			Keywords:   []string{"learning", "technical"},
		},
		{
			ID:                 "tech-6",
			Text:               "Describe how you have approached reviewing someone else's code.",
			Category:           model.CategoryTechnical,
			Difficulty:         model.DifficultyMedium,
			Keywords:           []string{"coding", "communication", "teamwork"},
			RequiresExperience: true,
		},
		{
			ID:         "tech-7",
			Text:       "What trade-offs do you weigh when choosing between a quick fix and a proper refactor?",
			Category:   model.CategoryTechnical,
			Difficulty: model.DifficultyHard,
			Keywords:   []string{"coding", "prioritization", "technical"},
		},
	},
	model.CategorySituational: {
		{
			ID:         "situ-1",
			Text:       "Imagine you're given a project with an unrealistic deadline. What would you do?",
			Category:   model.CategorySituational,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"deadline", "communication", "prioritization"},
		},
		{
			ID:         "situ-2",
			Text:       "Suppose a teammate consistently misses their commitments and it's affecting your work. How would you handle it?",
			Category:   model.CategorySituational,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"teamwork", "conflict-resolution"},
			FollowUpQuestions: []string{
				"At what point would you involve your manager?",
			},
		},
		{
			ID:         "situ-3",
			Text:       "If you joined a team and found their processes confusing, what would your first month look like?",
			Category:   model.CategorySituational,
			Difficulty: model.DifficultyEasy,
			Keywords:   []string{"adaptability", "learning"},
		},
		{
			ID:                 "situ-4",
			Text:               "Imagine a stakeholder pushes for a feature you believe is a mistake. How would you respond?",
			Category:           model.CategorySituational,
			Difficulty:         model.DifficultyHard,
			Keywords:           []string{"communication", "conflict-resolution"},
			RequiresExperience: true,
		},
		{
			ID:         "situ-5",
			Text:       "Suppose you discover a serious error in work you already delivered. What do you do?",
			Category:   model.CategorySituational,
			Difficulty: model.DifficultyMedium,
			Keywords:   []string{"problem-solving", "communication"},
		},
	},
	model.CategoryClosing: {
		{
			ID:         "close-1",
			Text:       "Is there anything we haven't covered that you'd like me to know about you?",
			Category:   model.CategoryClosing,
			Difficulty: model.DifficultyEasy,
		},
		{
			ID:         "close-2",
			Text:       "Where do you see your career heading over the next few years?",
			Category:   model.CategoryClosing,
			Difficulty: model.DifficultyEasy,
		},
		{
			ID:         "close-3",
			Text:       "What questions do you have about the role or the team?",
			Category:   model.CategoryClosing,
			Difficulty: model.DifficultyEasy,
		},
	},
}

// QuestionsFor returns the catalog entries for a category. The slice is a
// copy; the catalog itself is immutable after process start.
func QuestionsFor(category model.Category) []model.InterviewQuestion {
	entries := catalog[category]
	out := make([]model.InterviewQuestion, len(entries))
	copy(out, entries)
	return out
}

// Introductory returns the fixed warm-up subset used for the first
// exchanges. These never come from the generator.
func Introductory() []model.InterviewQuestion {
	return QuestionsFor(model.CategoryIntroductory)
}

// ByID looks up a catalog entry. Generated question ids miss here.
func ByID(id string) (model.InterviewQuestion, bool) {
	for _, entries := range catalog {
		for _, q := range entries {
			if q.ID == id {
				return q, true
			}
		}
	}
	return model.InterviewQuestion{}, false
}
