package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/internal/sequencer"
	"github.com/zochlan/interview-coach/pkg/model"
	"github.com/zochlan/interview-coach/pkg/response"
)

type nextQuestionReq struct {
	History []model.ChatMessage `json:"history"`
	Profile *model.CVProfile    `json:"profile"`
	Model   string              `json:"model"`
	UseAI   *bool               `json:"use_ai"`
}

// NextQuestion runs the sequencer over the posted conversation snapshot.
// The response always carries a question; generation failures degrade to
// the catalog inside the sequencer.
func (h *Handler) NextQuestion(c *gin.Context) {
	var req nextQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	outcome, err := h.Sequencer.NextQuestion(c.Request.Context(), sequencer.Input{
		History: req.History,
		Profile: req.Profile,
		Model:   req.Model,
		UseAI:   req.UseAI,
	})
	if err != nil {
		h.Logger.Error("next_question: sequencer failed", zap.Error(err))
		response.InternalError(c, "failed to select next question")
		return
	}

	h.Logger.Info("next_question: question selected",
		zap.String("question_id", outcome.Question.ID),
		zap.String("category", string(outcome.Question.Category)),
		zap.String("stage", outcome.Stage),
		zap.Bool("ai_generated", outcome.Question.IsAIGenerated),
		zap.Uint64("token", outcome.Token),
	)

	response.OK(c, outcome)
}

type analyzeReq struct {
	Question          string   `json:"question" binding:"required"`
	Answer            string   `json:"answer" binding:"required"`
	Model             string   `json:"model"`
	PreviousQuestions []string `json:"previous_questions"`
	PreviousAnswers   []string `json:"previous_answers"`
}

// Analyze forwards an answer to the generator for assessment. Any failure
// substitutes the fixed neutral record so the caller's scoring never
// breaks on missing fields.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "question and answer are required")
		return
	}

	analysis, err := h.Gateway.AnalyzeResponse(c.Request.Context(), gateway.AnalysisRequest{
		Question:          req.Question,
		Answer:            req.Answer,
		Model:             req.Model,
		PreviousQuestions: req.PreviousQuestions,
		PreviousAnswers:   req.PreviousAnswers,
	})
	if err != nil {
		h.Logger.Warn("analyze: generator failed, substituting neutral analysis", zap.Error(err))
		neutral := gateway.NeutralAnalysis(gateway.IsBehavioralQuestion(req.Question))
		response.OK(c, neutral)
		return
	}

	response.OK(c, analysis)
}
