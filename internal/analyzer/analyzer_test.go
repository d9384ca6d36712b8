package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zochlan/interview-coach/pkg/model"
)

const starAnswer = "At the time we had a failing release. My goal was to stabilize it. " +
	"I decided to reorganize the rollout plan. The result was a much smoother launch."

func TestAnalyzeIsIdempotent(t *testing.T) {
	text := "I led the team through a difficult project and we delivered on time."
	first := Analyze(text)
	second := Analyze(text)
	assert.Equal(t, first, second)
}

func TestCompletenessLaw(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Completeness
	}{
		{
			name: "all four STAR groups",
			text: starAnswer,
			want: model.CompletenessComplete,
		},
		{
			name: "no STAR language",
			text: "Yes.",
			want: model.CompletenessIncomplete,
		},
		{
			name: "situation and result only",
			text: "There was a production outage. The outcome was positive.",
			want: model.CompletenessPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).Completeness)
		})
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Sentiment
	}{
		{"positive only", "I really enjoyed that project, it was a great success.", model.SentimentPositive},
		{"negative only", "It was a difficult period and I struggled at first.", model.SentimentNegative},
		{"both resolve to neutral", "It was difficult but ultimately a great success.", model.SentimentNeutral},
		{"neither resolves to neutral", "I worked on the quarterly report.", model.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text).Sentiment)
		})
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, model.ConfidenceHigh, Analyze("I definitely handled that well.").Confidence)
	assert.Equal(t, model.ConfidenceLow, Analyze("Maybe I handled it okay, I guess.").Confidence)
	assert.Equal(t, model.ConfidenceMedium, Analyze("I handled the rollout.").Confidence)

	// High-confidence check wins when both patterns fire.
	assert.Equal(t, model.ConfidenceHigh, Analyze("Maybe it was hard, but I'm definitely proud of it.").Confidence)
}

func TestKeywordExtraction(t *testing.T) {
	a := Analyze("We had a tight deadline, so I prioritized the debugging work with my team.")
	assert.Contains(t, a.Keywords, "deadline")
	assert.Contains(t, a.Keywords, "prioritization")
	assert.Contains(t, a.Keywords, "debugging")
	assert.Contains(t, a.Keywords, "teamwork")

	assert.Empty(t, Analyze("Yes.").Keywords)
}

func TestAdaptiveContext(t *testing.T) {
	ctx := AdaptiveContextFor("I'm proud that I led the team through a difficult technical challenge.")
	assert.Contains(t, ctx.Themes, "achievement")
	assert.Contains(t, ctx.Themes, "challenge")
	assert.Contains(t, ctx.Themes, "leadership")
	assert.True(t, ctx.NeedsElaboration, "short answer should be flagged")

	long := "I joined the migration project in its second month and took over coordination between " +
		"the platform group and the two feature squads, which meant running the weekly planning calls, " +
		"tracking every open dependency, and stepping in whenever an integration branch went red."
	assert.False(t, AdaptiveContextFor(long).NeedsElaboration)
}
