package gateway

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/pkg/model"
)

// analysisContextWindow limits prior exchanges sent with an analysis call.
const analysisContextWindow = 3

// AnalysisRequest asks the generator to assess one question/answer pair.
type AnalysisRequest struct {
	Question          string
	Answer            string
	Model             string
	PreviousQuestions []string
	PreviousAnswers   []string
}

type analysisWire struct {
	Question          string   `json:"question"`
	Answer            string   `json:"answer"`
	Model             string   `json:"model,omitempty"`
	PreviousQuestions []string `json:"previousQuestions,omitempty"`
	PreviousAnswers   []string `json:"previousAnswers,omitempty"`
}

type analysisWireResponse struct {
	Success  bool                  `json:"success"`
	Analysis *model.AnswerAnalysis `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// Question shapes that call for STAR-based assessment.
var behavioralQuestionPattern = regexp.MustCompile(`(?i)(tell me about a time|describe a situation|give (me )?an example|share an experience|how did you handle|when have you)`)

// IsBehavioralQuestion reports whether a question invites a STAR answer.
func IsBehavioralQuestion(question string) bool {
	return behavioralQuestionPattern.MatchString(question)
}

// AnalyzeResponse asks the remote service to analyze an answer. Rate-limit
// exhaustion and hard failures both resolve to the fixed neutral record, so
// downstream scoring never deals with missing fields.
func (c *Client) AnalyzeResponse(ctx context.Context, req AnalysisRequest) (*model.AnswerAnalysis, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	isBehavioral := IsBehavioralQuestion(req.Question)

	wire := analysisWire{
		Question:          req.Question,
		Answer:            req.Answer,
		Model:             req.Model,
		PreviousQuestions: lastN(req.PreviousQuestions, analysisContextWindow),
		PreviousAnswers:   lastN(req.PreviousAnswers, analysisContextWindow),
	}

	var resp analysisWireResponse
	err := c.post(ctx, EndpointAnalysis, wire, &resp)
	if err == errRateLimited {
		fallback := NeutralAnalysis(isBehavioral)
		c.log.Info("synthesized neutral analysis", zap.Bool("behavioral", isBehavioral))
		return &fallback, nil
	}
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Analysis == nil {
		return nil, fmt.Errorf("generator returned no analysis: %s", resp.Error)
	}

	analysis := *resp.Analysis
	analysis.IsBehavioralQuestion = isBehavioral
	return &analysis, nil
}
