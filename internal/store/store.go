// Package store persists interview sessions. The durable implementation
// sits on Postgres; the in-memory one is a volatile fallback for running
// without a database. Saves are best-effort for callers: a session that
// fails to persist never blocks the conversation.
package store

import (
	"context"
	"strings"

	"github.com/zochlan/interview-coach/pkg/model"
)

// Store is the session persistence contract. SaveSession and UpdateSession
// are no-ops (empty id / false, no error) when messages contain no
// candidate turn; empty or unconfirmed sessions never hit storage. Message
// updates replace the slice wholesale.
type Store interface {
	SaveSession(ctx context.Context, messages []model.ChatMessage, sessionType model.SessionType, forceNew bool, metadata map[string]any) (string, error)
	UpdateSession(ctx context.Context, id string, messages []model.ChatMessage, sessionType model.SessionType, metadata map[string]any) (bool, error)
	GetSessionByID(ctx context.Context, id string) (*model.Session, error)
	ListSessions(ctx context.Context) ([]model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	Close()
}

const maxTitleLength = 40

// sessionTitle derives a display title from the first candidate message.
func sessionTitle(messages []model.ChatMessage) string {
	for _, m := range messages {
		if m.Speaker != model.SpeakerCandidate {
			continue
		}
		title := strings.TrimSpace(m.Text)
		if title == "" {
			continue
		}
		if len(title) > maxTitleLength {
			title = title[:maxTitleLength] + "…"
		}
		return title
	}
	return "Interview Session"
}
