package gateway

import (
	"fmt"
	"strings"

	"github.com/zochlan/interview-coach/pkg/model"
)

// Synthesized-question templates, selected by how many questions were
// already asked. A template table rather than inline logic so the texts are
// configuration; buckets are [0,3), [3,7), [7,11), 11+.
type fallbackTemplate struct {
	maxPrior int // exclusive upper bound on prior question count
	withRole string
	generic  string
}

var newSessionTemplate = fallbackTemplate{
	withRole: "To get us started, could you walk me through your background and what drew you to the %s role?",
	generic:  "To get us started, could you walk me through your background and what drew you to this field?",
}

var questionTemplates = []fallbackTemplate{
	{
		maxPrior: 3,
		withRole: "What would you say are your greatest strengths when it comes to working as a %s?",
		generic:  "What would you say are your greatest professional strengths?",
	},
	{
		maxPrior: 7,
		withRole: "Tell me about a challenging situation you faced in your %s work and how you handled it.",
		generic:  "Tell me about a challenging situation you faced at work and how you handled it.",
	},
	{
		maxPrior: 11,
		withRole: "How do you keep your skills current for %s work, and where would you like to grow next?",
		generic:  "How do you keep your professional skills current, and where would you like to grow next?",
	},
	{
		maxPrior: -1, // catch-all
		withRole: "As we wrap up, is there anything about your experience as a %s that we haven't covered yet?",
		generic:  "As we wrap up, is there anything about your experience that we haven't covered yet?",
	},
}

func (t fallbackTemplate) render(jobRole string) string {
	if strings.TrimSpace(jobRole) != "" {
		return fmt.Sprintf(t.withRole, jobRole)
	}
	return t.generic
}

// synthesizeQuestion builds the deterministic rate-limit fallback question.
func synthesizeQuestion(jobRole string, priorQuestions int, isNewSession bool) string {
	if isNewSession {
		return newSessionTemplate.render(jobRole)
	}
	for _, t := range questionTemplates {
		if t.maxPrior < 0 || priorQuestions < t.maxPrior {
			return t.render(jobRole)
		}
	}
	return questionTemplates[len(questionTemplates)-1].render(jobRole)
}

// NeutralAnalysis is the fixed neutral record used when analysis cannot
// reach the generator; downstream scoring never sees missing fields.
func NeutralAnalysis(isBehavioral bool) model.AnswerAnalysis {
	return model.AnswerAnalysis{
		Completeness:         model.CompletenessPartial,
		Confidence:           model.ConfidenceMedium,
		Strengths:            []string{"Unable to analyze the response in detail"},
		Weaknesses:           []string{"Unable to analyze the response in detail"},
		ImprovementTips:      []string{"Try to be more specific and structured in your answer"},
		StarRating:           3,
		KeyTopics:            []string{},
		FollowUpSuggestions:  []string{"Could you elaborate more on your experience?"},
		IsBehavioralQuestion: isBehavioral,
	}
}
