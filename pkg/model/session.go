package model

import "time"

// SessionType distinguishes a scored interview from a free-form coach chat.
type SessionType string

const (
	SessionTypeInterview SessionType = "interview"
	SessionTypeCoach     SessionType = "coach"
)

// Session is a saved interview transcript. Updates replace the messages
// slice wholesale; there is no partial or append persistence.
type Session struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	CreatedAt   time.Time      `json:"created_at"`
	LastUpdated time.Time      `json:"last_updated"`
	SessionType SessionType    `json:"session_type"`
	Messages    []ChatMessage  `json:"messages"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// HasCandidateTurn reports whether any candidate message exists. Sessions
// without one never hit durable storage.
func HasCandidateTurn(messages []ChatMessage) bool {
	for _, m := range messages {
		if m.Speaker == SpeakerCandidate {
			return true
		}
	}
	return false
}
