package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/analyzer"
	"github.com/zochlan/interview-coach/pkg/model"
)

// contextWindow limits how many prior exchanges travel with a request.
const contextWindow = 5

// QuestionCVData is the candidate record sent to the generator, the
// profile plus the adaptive hints derived from the conversation.
type QuestionCVData struct {
	model.CVProfile
	AdaptiveContext    *analyzer.AdaptiveContext `json:"adaptive_context,omitempty"`
	InterviewStage     string                    `json:"interview_stage,omitempty"`
	QuestionDifficulty string                    `json:"question_difficulty,omitempty"`
}

// QuestionRequest is the context for generating the next question.
type QuestionRequest struct {
	JobRole           string
	PreviousQuestions []string
	PreviousAnswers   []string
	CVData            *QuestionCVData
	Model             string
	IsNewSession      bool
	Stage             string
	Difficulty        string
}

type questionWire struct {
	JobRole           string          `json:"jobRole"`
	PreviousQuestions []string        `json:"previousQuestions"`
	PreviousAnswers   []string        `json:"previousAnswers"`
	CVData            *QuestionCVData `json:"cvData,omitempty"`
	Model             string          `json:"model,omitempty"`
	IsNewSession      bool            `json:"isNewSession"`
	Stage             string          `json:"stage,omitempty"`
	Difficulty        string          `json:"difficulty,omitempty"`
	Nonce             string          `json:"nonce"`
}

type questionWireResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question"`
	Error    string `json:"error,omitempty"`
	Metadata *struct {
		Model     string `json:"model,omitempty"`
		Timestamp string `json:"timestamp,omitempty"`
	} `json:"metadata,omitempty"`
}

// QuestionResult is a generated (or synthesized) question text. Callers
// cannot tell a synthesized success from a genuine one here; the
// rate-limit event stream is the only signal.
type QuestionResult struct {
	Text  string
	Model string
}

// GenerateQuestion asks the remote service for the next question. A
// persistently rate-limited endpoint resolves to a deterministic template
// rather than an error; every other failure is returned to the caller.
func (c *Client) GenerateQuestion(ctx context.Context, req QuestionRequest) (*QuestionResult, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	wire := questionWire{
		JobRole:           req.JobRole,
		PreviousQuestions: lastN(req.PreviousQuestions, contextWindow),
		PreviousAnswers:   lastN(req.PreviousAnswers, contextWindow),
		CVData:            req.CVData,
		Model:             req.Model,
		IsNewSession:      req.IsNewSession,
		Stage:             req.Stage,
		Difficulty:        req.Difficulty,
		Nonce:             fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString()[:8]),
	}

	var resp questionWireResponse
	err := c.post(ctx, EndpointQuestion, wire, &resp)
	if err == errRateLimited {
		text := synthesizeQuestion(req.JobRole, len(req.PreviousQuestions), req.IsNewSession)
		c.log.Info("synthesized fallback question",
			zap.Int("previous_questions", len(req.PreviousQuestions)),
			zap.Bool("is_new_session", req.IsNewSession))
		return &QuestionResult{Text: text, Model: "fallback-template"}, nil
	}
	if err != nil {
		return nil, err
	}
	if !resp.Success || strings.TrimSpace(resp.Question) == "" {
		return nil, fmt.Errorf("generator returned no question: %s", resp.Error)
	}

	result := &QuestionResult{
		Text:  cleanQuestionText(resp.Question),
		Model: req.Model,
	}
	if resp.Metadata != nil && resp.Metadata.Model != "" {
		result.Model = resp.Metadata.Model
	}
	return result, nil
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

// Model output sometimes arrives wrapped in meta-commentary. The prefix
// list and patterns below strip the common shapes before the text is shown
// as an interviewer turn.
var metaPrefixes = []string{
	"question:", "interview question:", "q:",
	"here's a", "here is a", "here's an", "here is an",
	"here's the opening question:", "here is the opening question:",
	"opening question:", "first question:",
}

var metaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here'?s\s+an?\s+\w+\s+question:?\s+(.+)$`),
	regexp.MustCompile(`(?i)^i\s+would\s+(?:like\s+to\s+)?ask:?\s+(.+)$`),
	regexp.MustCompile(`(?i)^a\s+\w+\s+question\s+would\s+be:?\s+(.+)$`),
	regexp.MustCompile(`(?i)^(?:for\s+my\s+first\s+question|to\s+get\s+started|let\s+me\s+ask)[,:]?\s+(.+)$`),
}

func cleanQuestionText(raw string) string {
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	text := strings.Join(lines, " ")

	for _, p := range metaPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			text = strings.TrimSpace(m[1])
			break
		}
	}

	lower := strings.ToLower(text)
	for _, prefix := range metaPrefixes {
		if strings.HasPrefix(lower, prefix) {
			text = strings.TrimSpace(text[len(prefix):])
			lower = strings.ToLower(text)
		}
	}

	text = strings.TrimLeft(text, ",:;- ")
	return capitalize(text)
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
