package model

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerCandidate   Speaker = "candidate"
	SpeakerInterviewer Speaker = "interviewer"
)

// QuestionMetadata is attached to interviewer turns that pose a question.
type QuestionMetadata struct {
	ID             string     `json:"id"`
	Category       Category   `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
	IsAIGenerated  bool       `json:"is_ai_generated"`
	IsComplete     bool       `json:"is_complete"`
	InterviewStage int        `json:"interview_stage"`
}

// ChatMessage is one turn in the conversation. Ordering authority is the
// position in the containing slice, not the display timestamp. Analysis
// fields are populated after the fact on candidate turns only.
type ChatMessage struct {
	Speaker             Speaker           `json:"speaker"`
	Text                string            `json:"text"`
	Timestamp           string            `json:"timestamp,omitempty"`
	IsInterviewQuestion bool              `json:"is_interview_question,omitempty"`
	QuestionMetadata    *QuestionMetadata `json:"question_metadata,omitempty"`

	Strengths            []string `json:"strengths,omitempty"`
	Weaknesses           []string `json:"weaknesses,omitempty"`
	ImprovementTips      []string `json:"improvement_tips,omitempty"`
	StarRating           int      `json:"star_rating,omitempty"`
	IsBehavioralQuestion bool     `json:"is_behavioral_question,omitempty"`
}

// QuestionCount returns how many questions have been posed so far.
func QuestionCount(history []ChatMessage) int {
	count := 0
	for _, m := range history {
		if m.Speaker == SpeakerInterviewer && m.IsInterviewQuestion {
			count++
		}
	}
	return count
}

// LastQuestion returns the most recent posed question metadata, or nil.
func LastQuestion(history []ChatMessage) *QuestionMetadata {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if m.Speaker == SpeakerInterviewer && m.IsInterviewQuestion && m.QuestionMetadata != nil {
			return m.QuestionMetadata
		}
	}
	return nil
}

// LastAnswer returns the most recent candidate turn, or nil.
func LastAnswer(history []ChatMessage) *ChatMessage {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Speaker == SpeakerCandidate {
			return &history[i]
		}
	}
	return nil
}

// CandidateTexts returns candidate turn texts in order.
func CandidateTexts(history []ChatMessage) []string {
	var out []string
	for _, m := range history {
		if m.Speaker == SpeakerCandidate {
			out = append(out, m.Text)
		}
	}
	return out
}

// QuestionTexts returns posed question texts in order.
func QuestionTexts(history []ChatMessage) []string {
	var out []string
	for _, m := range history {
		if m.Speaker == SpeakerInterviewer && m.IsInterviewQuestion {
			out = append(out, m.Text)
		}
	}
	return out
}
