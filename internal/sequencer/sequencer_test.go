package sequencer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/bank"
	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/pkg/model"
)

type stubGenerator struct {
	model   string
	result  *gateway.QuestionResult
	err     error
	calls   int
	lastReq gateway.QuestionRequest
}

func (s *stubGenerator) GenerateQuestion(_ context.Context, req gateway.QuestionRequest) (*gateway.QuestionResult, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubGenerator) DefaultModel() string { return s.model }

func question(id, text string) model.ChatMessage {
	return model.ChatMessage{
		Speaker:             model.SpeakerInterviewer,
		Text:                text,
		IsInterviewQuestion: true,
		QuestionMetadata:    &model.QuestionMetadata{ID: id, Category: model.CategoryBehavioral},
	}
}

func answer(text string) model.ChatMessage {
	return model.ChatMessage{Speaker: model.SpeakerCandidate, Text: text}
}

// Partial STAR coverage with no hedging: never triggers the follow-up path.
const steadyAnswer = "I led the team through the situation and the result was good."

func TestWarmUpUsesFixedIntroductorySet(t *testing.T) {
	gen := &stubGenerator{model: "llama-3.3-70b"}
	seq := New(gen, zap.NewNop())

	introIDs := map[string]bool{}
	for _, q := range bank.Introductory() {
		introIDs[q.ID] = true
	}

	histories := [][]model.ChatMessage{
		nil,
		{question("q-1-0001", "Tell me about yourself.")},
		{question("q-1-0001", "Tell me about yourself."), answer("Sure, happy to.")},
	}
	profile := &model.CVProfile{TargetJob: "Software Engineer", Skills: []string{"Go"}}
	for _, history := range histories {
		out, err := seq.NextQuestion(context.Background(), Input{History: history, Profile: profile})
		require.NoError(t, err)
		assert.True(t, introIDs[out.Question.ID], "expected warm-up question, got %s", out.Question.ID)
		assert.Equal(t, "introductory", out.Stage)
	}
	assert.Zero(t, gen.calls, "generator must not run during warm-up")
}

func TestInterviewCompletesAtExchangeCeiling(t *testing.T) {
	gen := &stubGenerator{model: "llama-3.3-70b"}
	seq := New(gen, zap.NewNop())

	var history []model.ChatMessage
	for i := 0; i < 15; i++ {
		history = append(history, question("q-1-0001", "A question."), answer(steadyAnswer))
	}

	out, err := seq.NextQuestion(context.Background(), Input{History: history})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryClosing, out.Question.Category)
	assert.True(t, out.Question.IsComplete)
	assert.Equal(t, "closing", out.Stage)
	assert.Zero(t, gen.calls)
}

func TestFollowUpOverridesGeneration(t *testing.T) {
	gen := &stubGenerator{model: "llama-3.3-70b"}
	seq := New(gen, zap.NewNop())

	pressure, ok := bank.ByID("behav-1")
	require.True(t, ok)
	require.NotEmpty(t, pressure.FollowUpQuestions)

	history := []model.ChatMessage{
		question("q-1-0001", "Tell me about yourself."),
		answer(steadyAnswer),
		question("behav-1", pressure.Text),
		answer("Maybe, I guess."),
	}

	out, err := seq.NextQuestion(context.Background(), Input{History: history})
	require.NoError(t, err)
	assert.Equal(t, "I'd like to explore that further. "+pressure.FollowUpQuestions[0], out.Question.Text)
	assert.Equal(t, pressure.Category, out.Question.Category)
	assert.NotEqual(t, pressure.ID, out.Question.ID)
	assert.Zero(t, gen.calls, "follow-up takes priority over generation")
}

func behavioralHistory() []model.ChatMessage {
	return []model.ChatMessage{
		question("q-1-0001", "Placeholder opener one."),
		answer(steadyAnswer),
		question("q-1-0002", "Placeholder opener two."),
		answer(steadyAnswer),
		question("q-1-0003", "Placeholder opener three."),
		answer(steadyAnswer),
	}
}

func TestGeneratedQuestionCarriesStageContext(t *testing.T) {
	gen := &stubGenerator{
		model:  "llama-3.3-70b",
		result: &gateway.QuestionResult{Text: "How do you approach mentoring junior colleagues?", Model: "llama-3.3-70b"},
	}
	seq := New(gen, zap.NewNop())

	profile := &model.CVProfile{
		TargetJob: "Software Engineer",
		Skills:    []string{"Go", "PostgreSQL"},
	}
	out, err := seq.NextQuestion(context.Background(), Input{History: behavioralHistory(), Profile: profile})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.True(t, out.Question.IsAIGenerated)
	assert.Equal(t, gen.result.Text, out.Question.Text)
	assert.Equal(t, model.CategoryBehavioral, out.Question.Category)
	assert.Equal(t, model.DifficultyMedium, out.Question.Difficulty)

	req := gen.lastReq
	assert.Equal(t, "Software Engineer", req.JobRole)
	assert.False(t, req.IsNewSession)
	assert.Equal(t, "behavioral", req.Stage)
	assert.Equal(t, "medium", req.Difficulty)
	assert.Len(t, req.PreviousQuestions, 3)
	require.NotNil(t, req.CVData)
	assert.NotNil(t, req.CVData.AdaptiveContext)
}

func TestGeneratorFailureFallsBackToCatalog(t *testing.T) {
	gen := &stubGenerator{model: "llama-3.3-70b", err: errors.New("upstream unavailable")}
	seq := New(gen, zap.NewNop())

	out, err := seq.NextQuestion(context.Background(), Input{History: behavioralHistory()})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.False(t, out.Question.IsAIGenerated)
	assert.Equal(t, model.CategoryBehavioral, out.Question.Category)
	_, ok := bank.ByID(out.Question.ID)
	assert.True(t, ok, "fallback question must come from the catalog")
}

func TestFallbackNeverRepeatsAskedQuestions(t *testing.T) {
	useAI := false
	asked := []string{"behav-1", "behav-2", "behav-4"}

	history := []model.ChatMessage{}
	for _, id := range asked {
		q, ok := bank.ByID(id)
		if !ok {
			t.Fatalf("unknown catalog id %s", id)
		}
		history = append(history, question(q.ID, q.Text), answer(steadyAnswer))
	}

	seq := New(&stubGenerator{}, zap.NewNop())
	for i := 0; i < 50; i++ {
		out, err := seq.NextQuestion(context.Background(), Input{History: history, UseAI: &useAI})
		require.NoError(t, err)
		assert.NotContains(t, asked, out.Question.ID)
		assert.Equal(t, model.CategoryBehavioral, out.Question.Category)
		// Steady answers score 0.5, so the medium band applies, and the only
		// unasked medium behavioral question left is behav-8.
		assert.Equal(t, "behav-8", out.Question.ID)
	}
}

func TestUseAIFalseSkipsGenerator(t *testing.T) {
	useAI := false
	gen := &stubGenerator{model: "llama-3.3-70b"}
	seq := New(gen, zap.NewNop())

	out, err := seq.NextQuestion(context.Background(), Input{History: behavioralHistory(), UseAI: &useAI})
	require.NoError(t, err)
	assert.Zero(t, gen.calls)
	assert.False(t, out.Question.IsAIGenerated)
}

func TestFenceTokensIncreaseMonotonically(t *testing.T) {
	seq := New(&stubGenerator{}, zap.NewNop())

	var last uint64
	for i := 0; i < 5; i++ {
		out, err := seq.NextQuestion(context.Background(), Input{})
		require.NoError(t, err)
		assert.Greater(t, out.Token, last)
		last = out.Token
	}
}

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, jaccardSimilarity("Tell me about yourself.", "tell me about yourself"))
	assert.Equal(t, 0.0, jaccardSimilarity("", "tell me about yourself"))
	assert.Less(t, jaccardSimilarity(
		"Tell me about a time you had to work under pressure to meet a deadline.",
		"What questions do you have about the role or the team?",
	), duplicateSimilarityThreshold)
	assert.GreaterOrEqual(t, jaccardSimilarity(
		"Tell me about a time you had to work under pressure to meet a deadline.",
		"Tell me about a time when you had to work under pressure to hit a deadline.",
	), duplicateSimilarityThreshold)
}

func TestRelevanceRankingPrefersProfileSkills(t *testing.T) {
	profile := &model.CVProfile{
		TargetJob: "Backend Engineer",
		Skills:    []string{"debugging", "testing"},
		Experience: model.Experience{
			Entries: []model.ExperienceEntry{{Title: "Senior Engineer", Company: "Acme"}},
		},
	}

	questions := bank.QuestionsFor(model.CategoryTechnical)
	kept := rankByRelevance(questions, profile)

	require.NotEmpty(t, kept)
	assert.LessOrEqual(t, len(kept), len(questions))
	keptIDs := make([]string, len(kept))
	for i, q := range kept {
		keptIDs[i] = q.ID
	}
	assert.Contains(t, keptIDs, "tech-1", "skill-matched question should survive the cut")
	assert.Contains(t, keptIDs, "tech-2", "skill-matched question should survive the cut")
	assert.True(t, strings.HasPrefix(kept[0].ID, "tech-"))
}

func TestFallbackRevertsWhenFiltersExhaust(t *testing.T) {
	useAI := false
	seq := New(&stubGenerator{}, zap.NewNop())

	// Every closing question asked already; filters empty out and revert.
	history := []model.ChatMessage{}
	for _, q := range bank.QuestionsFor(model.CategoryClosing) {
		history = append(history, question(q.ID, q.Text), answer(steadyAnswer))
	}
	// Pad to the closing band without adding question turns.
	for len(history) < 24 {
		history = append(history, answer(steadyAnswer))
	}

	out, err := seq.NextQuestion(context.Background(), Input{History: history, UseAI: &useAI})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryClosing, out.Question.Category)
}
