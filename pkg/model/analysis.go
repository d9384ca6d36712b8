package model

// Completeness grades how much STAR structure an answer carries.
type Completeness string

const (
	CompletenessComplete   Completeness = "complete"
	CompletenessPartial    Completeness = "partial"
	CompletenessIncomplete Completeness = "incomplete"
)

// Score maps completeness onto the 0..1 scale used for difficulty blending.
func (c Completeness) Score() float64 {
	switch c {
	case CompletenessComplete:
		return 1.0
	case CompletenessPartial:
		return 0.5
	default:
		return 0
	}
}

// Confidence grades how assertive an answer sounds.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Score maps confidence onto the 0..1 scale used for difficulty blending.
func (c Confidence) Score() float64 {
	switch c {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.5
	default:
		return 0
	}
}

// Sentiment is the crude polarity signal of an answer.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ResponseAnalysis is the analyzer's derived view of a single answer.
// It is a pure function of the text and is recomputed, never stored.
type ResponseAnalysis struct {
	Keywords     []string     `json:"keywords"`
	Sentiment    Sentiment    `json:"sentiment"`
	Confidence   Confidence   `json:"confidence"`
	Completeness Completeness `json:"completeness"`
}

// AnswerAnalysis is the remote generator's analysis record for one answer.
type AnswerAnalysis struct {
	Completeness         Completeness `json:"completeness"`
	Confidence           Confidence   `json:"confidence"`
	Strengths            []string     `json:"strengths"`
	Weaknesses           []string     `json:"weaknesses"`
	ImprovementTips      []string     `json:"improvement_tips"`
	StarRating           int          `json:"star_rating"`
	KeyTopics            []string     `json:"key_topics,omitempty"`
	FollowUpSuggestions  []string     `json:"follow_up_suggestions,omitempty"`
	IsBehavioralQuestion bool         `json:"is_behavioral_question,omitempty"`
}
