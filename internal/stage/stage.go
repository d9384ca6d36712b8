// Package stage maps conversation length and rolling answer quality to an
// interview stage and a target question difficulty.
package stage

import (
	"regexp"
	"strings"

	"github.com/zochlan/interview-coach/internal/analyzer"
	"github.com/zochlan/interview-coach/pkg/model"
)

// Stage is the coarse phase of the interview.
type Stage int

const (
	StageIntroductory Stage = iota
	StageBehavioral
	StageTechnical
	StageSituational
	StageClosing
)

func (s Stage) String() string {
	switch s {
	case StageIntroductory:
		return "introductory"
	case StageBehavioral:
		return "behavioral"
	case StageTechnical:
		return "technical"
	case StageSituational:
		return "situational"
	default:
		return "closing"
	}
}

// MaxExchanges is the hard ceiling of question/answer exchanges; the
// interview completes at this point regardless of stage.
const MaxExchanges = 15

// StageFor derives the stage and its question category from the message
// count. The technical slot only opens for candidates with an inferred
// technical background; otherwise it becomes an extra behavioral slot.
func StageFor(messageCount int, technicalBackground bool) (Stage, model.Category) {
	switch {
	case messageCount < 6:
		return StageIntroductory, model.CategoryIntroductory
	case messageCount < 12:
		return StageBehavioral, model.CategoryBehavioral
	case messageCount < 18:
		if technicalBackground {
			return StageTechnical, model.CategoryTechnical
		}
		return StageTechnical, model.CategoryBehavioral
	case messageCount < 24:
		return StageSituational, model.CategorySituational
	default:
		return StageClosing, model.CategoryClosing
	}
}

const (
	defaultPerformance = 0.5
	performanceWindow  = 3

	completenessWeight = 0.6
	confidenceWeight   = 0.4
)

// PerformanceScore blends completeness and confidence over the last three
// candidate turns. Fewer than two turns yields the neutral default.
func PerformanceScore(history []model.ChatMessage) float64 {
	answers := model.CandidateTexts(history)
	if len(answers) < 2 {
		return defaultPerformance
	}
	if len(answers) > performanceWindow {
		answers = answers[len(answers)-performanceWindow:]
	}

	total := 0.0
	for _, text := range answers {
		a := analyzer.Analyze(text)
		total += completenessWeight*a.Completeness.Score() + confidenceWeight*a.Confidence.Score()
	}
	return total / float64(len(answers))
}

// TargetDifficulty converts the rolling performance score into a question
// difficulty, clamped so early stages never go hard and late stages never
// go easy.
func TargetDifficulty(history []model.ChatMessage, s Stage) model.Difficulty {
	score := PerformanceScore(history)

	var difficulty model.Difficulty
	switch {
	case score > 0.8:
		difficulty = model.DifficultyHard
	case score < 0.4:
		difficulty = model.DifficultyEasy
	default:
		difficulty = model.DifficultyMedium
	}

	if difficulty == model.DifficultyHard && s <= StageBehavioral {
		difficulty = model.DifficultyMedium
	}
	if difficulty == model.DifficultyEasy && s >= StageSituational {
		difficulty = model.DifficultyMedium
	}
	return difficulty
}

// Background-detector keyword tables. These are replaceable configuration,
// not load-bearing business rules.
var (
	technicalBackgroundPattern = regexp.MustCompile(`(?i)\b(software|developer|engineer(ing)?|programm(er|ing)|cod(e|ing)|python|java(script)?|golang|database|backend|frontend|devops|cloud|api|data scien\w*)\b`)
	generalBackgroundPattern   = regexp.MustCompile(`(?i)\b(retail|store|sales|customer service|cashier|manager|management|supervisor|marketing|hospitality|restaurant|warehouse|admin(istration)?)\b`)
)

// InferTechnicalBackground scans the first candidate message and compares
// technical keyword hits against retail/management hits.
func InferTechnicalBackground(history []model.ChatMessage) bool {
	var first string
	for _, m := range history {
		if m.Speaker == model.SpeakerCandidate {
			first = m.Text
			break
		}
	}
	if strings.TrimSpace(first) == "" {
		return false
	}

	techHits := len(technicalBackgroundPattern.FindAllString(first, -1))
	generalHits := len(generalBackgroundPattern.FindAllString(first, -1))
	return techHits > 0 && techHits > generalHits
}
