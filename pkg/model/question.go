package model

// Category is the coarse type of an interview question.
type Category string

const (
	CategoryIntroductory Category = "introductory"
	CategoryBehavioral   Category = "behavioral"
	CategoryTechnical    Category = "technical"
	CategorySituational  Category = "situational"
	CategoryClosing      Category = "closing"
)

// Difficulty of an interview question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// InterviewQuestion is a catalog entry or a freshly generated question.
// Catalog entries are immutable and loaded once; generated entries are
// minted per call and never reused except for duplicate comparison.
type InterviewQuestion struct {
	ID                 string     `json:"id"`
	Text               string     `json:"text"`
	Category           Category   `json:"category"`
	Difficulty         Difficulty `json:"difficulty"`
	FollowUpQuestions  []string   `json:"follow_up_questions,omitempty"`
	Keywords           []string   `json:"keywords,omitempty"`
	RequiresExperience bool       `json:"requires_experience,omitempty"`
	IsAIGenerated      bool       `json:"is_ai_generated"`
	IsComplete         bool       `json:"is_complete"`
}
