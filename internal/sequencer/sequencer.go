// Package sequencer decides which interview question to ask next, given the
// conversation so far, the candidate profile, and inferred answer quality.
// It orchestrates the generation gateway and degrades to the static catalog
// whenever generation is unavailable; the caller is never left without a
// question.
package sequencer

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/analyzer"
	"github.com/zochlan/interview-coach/internal/bank"
	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/internal/stage"
	"github.com/zochlan/interview-coach/pkg/model"
)

// warmUpThreshold: below this many messages, questions come from the fixed
// introductory subset and never from the generator.
const warmUpThreshold = 3

// QuestionGenerator is the sequencer's view of the generation gateway.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, req gateway.QuestionRequest) (*gateway.QuestionResult, error)
	DefaultModel() string
}

type Sequencer struct {
	gen   QuestionGenerator
	log   *zap.Logger
	fence atomic.Uint64
	rng   *rand.Rand
}

func New(gen QuestionGenerator, log *zap.Logger) *Sequencer {
	return &Sequencer{
		gen: gen,
		log: log,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Input is a snapshot of the conversation; the sequencer never retains a
// reference to it across calls.
type Input struct {
	History []model.ChatMessage
	Profile *model.CVProfile
	Model   string
	// UseAI overrides the default of generating whenever a model is
	// available.
	UseAI *bool
}

// Outcome carries the chosen question and a fence token. Tokens increase
// monotonically per invocation; a caller that issued overlapping requests
// keeps only the outcome with the highest token.
type Outcome struct {
	Question model.InterviewQuestion `json:"question"`
	Token    uint64                  `json:"token"`
	Stage    string                  `json:"stage"`
}

// NextQuestion derives the interview state from the history and picks the
// next question. Gateway failures of any kind resolve to the catalog
// fallback rather than propagating.
func (s *Sequencer) NextQuestion(ctx context.Context, in Input) (*Outcome, error) {
	token := s.fence.Add(1)
	history := in.History

	questionCount := model.QuestionCount(history)
	if questionCount >= stage.MaxExchanges {
		return &Outcome{
			Question: closingQuestion(),
			Token:    token,
			Stage:    stage.StageClosing.String(),
		}, nil
	}

	technical := stage.InferTechnicalBackground(history)
	st, category := stage.StageFor(len(history), technical)
	difficulty := stage.TargetDifficulty(history, st)

	if len(history) < warmUpThreshold {
		intro := bank.Introductory()
		return &Outcome{
			Question: intro[s.rng.Intn(len(intro))],
			Token:    token,
			Stage:    stage.StageIntroductory.String(),
		}, nil
	}

	if q := s.followUpOverride(history); q != nil {
		return &Outcome{Question: *q, Token: token, Stage: st.String()}, nil
	}

	useAI := in.Model != "" || s.gen.DefaultModel() != ""
	if in.UseAI != nil {
		useAI = *in.UseAI
	}

	if useAI {
		q, err := s.generate(ctx, in, st, category, difficulty)
		if err == nil {
			return &Outcome{Question: *q, Token: token, Stage: st.String()}, nil
		}
		s.log.Warn("question generation failed, using catalog fallback", zap.Error(err))
	}

	q := s.fallback(history, in.Profile, category, difficulty)
	return &Outcome{Question: q, Token: token, Stage: st.String()}, nil
}

// followUpOverride prefers a catalog follow-up when the latest answer to a
// known question analyzed as incomplete or low-confidence. It takes
// priority over both generation and fallback whenever it triggers.
func (s *Sequencer) followUpOverride(history []model.ChatMessage) *model.InterviewQuestion {
	lastQ := model.LastQuestion(history)
	if lastQ == nil {
		return nil
	}
	catalogQ, ok := bank.ByID(lastQ.ID)
	if !ok || len(catalogQ.FollowUpQuestions) == 0 {
		return nil
	}
	answer := model.LastAnswer(history)
	if answer == nil {
		return nil
	}

	a := analyzer.Analyze(answer.Text)
	if a.Completeness != model.CompletenessIncomplete && a.Confidence != model.ConfidenceLow {
		return nil
	}

	return &model.InterviewQuestion{
		ID:         mintID(),
		Text:       "I'd like to explore that further. " + catalogQ.FollowUpQuestions[0],
		Category:   catalogQ.Category,
		Difficulty: catalogQ.Difficulty,
	}
}

func (s *Sequencer) generate(ctx context.Context, in Input, st stage.Stage, category model.Category, difficulty model.Difficulty) (*model.InterviewQuestion, error) {
	history := in.History
	req := gateway.QuestionRequest{
		JobRole:           in.Profile.Role(),
		PreviousQuestions: model.QuestionTexts(history),
		PreviousAnswers:   model.CandidateTexts(history),
		Model:             in.Model,
		IsNewSession:      len(history) <= 1,
		Stage:             st.String(),
		Difficulty:        string(difficulty),
	}

	if !in.Profile.IsZero() {
		cvData := &gateway.QuestionCVData{
			CVProfile:          *in.Profile,
			InterviewStage:     st.String(),
			QuestionDifficulty: string(difficulty),
		}
		if answer := model.LastAnswer(history); answer != nil {
			adaptive := analyzer.AdaptiveContextFor(answer.Text)
			cvData.AdaptiveContext = &adaptive
		}
		req.CVData = cvData
	}

	result, err := s.gen.GenerateQuestion(ctx, req)
	if err != nil {
		return nil, err
	}

	return &model.InterviewQuestion{
		ID:            mintID(),
		Text:          result.Text,
		Category:      category,
		Difficulty:    difficulty,
		IsAIGenerated: true,
	}, nil
}

func closingQuestion() model.InterviewQuestion {
	return model.InterviewQuestion{
		ID:         mintID(),
		Text:       "That brings us to the end of our interview. Thank you for your time and thoughtful answers. Is there anything you'd like to add before we finish?",
		Category:   model.CategoryClosing,
		Difficulty: model.DifficultyEasy,
		IsComplete: true,
	}
}

// mintID creates a fresh question id from timestamp plus randomness.
func mintID() string {
	return fmt.Sprintf("q-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
