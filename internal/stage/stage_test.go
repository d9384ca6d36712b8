package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zochlan/interview-coach/pkg/model"
)

func candidate(text string) model.ChatMessage {
	return model.ChatMessage{Speaker: model.SpeakerCandidate, Text: text}
}

func interviewer(text string) model.ChatMessage {
	return model.ChatMessage{Speaker: model.SpeakerInterviewer, Text: text}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		technical bool
		stage     Stage
		category  model.Category
	}{
		{"empty history", 0, true, StageIntroductory, model.CategoryIntroductory},
		{"last introductory slot", 5, true, StageIntroductory, model.CategoryIntroductory},
		{"boundary into behavioral", 6, true, StageBehavioral, model.CategoryBehavioral},
		{"technical slot with background", 12, true, StageTechnical, model.CategoryTechnical},
		{"technical slot without background", 12, false, StageTechnical, model.CategoryBehavioral},
		{"situational", 18, false, StageSituational, model.CategorySituational},
		{"closing", 24, true, StageClosing, model.CategoryClosing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := StageFor(tt.count, tt.technical)
			assert.Equal(t, tt.stage, s)
			assert.Equal(t, tt.category, c)
		})
	}
}

func TestPerformanceScoreDefaultsWithFewAnswers(t *testing.T) {
	assert.Equal(t, defaultPerformance, PerformanceScore(nil))
	assert.Equal(t, defaultPerformance, PerformanceScore([]model.ChatMessage{
		interviewer("Tell me about yourself."),
		candidate("I definitely have a lot to say."),
	}))
}

func TestPerformanceScoreWindowsLastThree(t *testing.T) {
	strong := "At the time we had a failing release. My goal was to stabilize it. " +
		"I decided to reorganize the rollout plan. The result was a smoother launch, definitely."

	history := []model.ChatMessage{
		candidate("Maybe I guess it went okay."), // outside the window
		candidate(strong),
		candidate(strong),
		candidate(strong),
	}
	assert.InDelta(t, 1.0, PerformanceScore(history), 0.001)
}

func TestTargetDifficulty(t *testing.T) {
	strong := "At the time we had a failing release. My goal was to stabilize it. " +
		"I decided to reorganize the rollout plan. The result was a smoother launch, definitely."
	weak := "Maybe, I guess."

	strongHistory := []model.ChatMessage{candidate(strong), candidate(strong)}
	weakHistory := []model.ChatMessage{candidate(weak), candidate(weak)}

	assert.Equal(t, model.DifficultyHard, TargetDifficulty(strongHistory, StageTechnical))
	assert.Equal(t, model.DifficultyEasy, TargetDifficulty(weakHistory, StageBehavioral))

	// Clamps: no hard questions early, no easy questions late.
	assert.Equal(t, model.DifficultyMedium, TargetDifficulty(strongHistory, StageIntroductory))
	assert.Equal(t, model.DifficultyMedium, TargetDifficulty(strongHistory, StageBehavioral))
	assert.Equal(t, model.DifficultyMedium, TargetDifficulty(weakHistory, StageSituational))
	assert.Equal(t, model.DifficultyMedium, TargetDifficulty(weakHistory, StageClosing))

	// Neutral default with a single answer lands in the medium band.
	assert.Equal(t, model.DifficultyMedium, TargetDifficulty([]model.ChatMessage{candidate(weak)}, StageTechnical))
}

func TestInferTechnicalBackground(t *testing.T) {
	tests := []struct {
		name  string
		first string
		want  bool
	}{
		{"software answer", "I'm a backend software engineer working mostly in Python.", true},
		{"retail answer", "I've been a retail store manager for five years.", false},
		{"mixed leaning general", "I was a cashier, then a sales supervisor, and I wrote one Python script.", false},
		{"no signal", "I like working with people.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := []model.ChatMessage{
				interviewer("Tell me about your background."),
				candidate(tt.first),
			}
			assert.Equal(t, tt.want, InferTechnicalBackground(history))
		})
	}

	assert.False(t, InferTechnicalBackground(nil))
}
