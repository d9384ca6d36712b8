package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zochlan/interview-coach/pkg/model"
)

// MemoryStore keeps sessions in process memory. Used when no database is
// configured or the database is unreachable; contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*model.Session)}
}

func (s *MemoryStore) SaveSession(ctx context.Context, messages []model.ChatMessage, sessionType model.SessionType, forceNew bool, metadata map[string]any) (string, error) {
	if !model.HasCandidateTurn(messages) {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	if !forceNew {
		if existing := s.latestOfType(sessionType); existing != nil {
			existing.Messages = cloneMessages(messages)
			existing.Metadata = metadata
			existing.LastUpdated = now
			return existing.ID, nil
		}
	}

	session := &model.Session{
		ID:          uuid.NewString(),
		Title:       sessionTitle(messages),
		CreatedAt:   now,
		LastUpdated: now,
		SessionType: sessionType,
		Messages:    cloneMessages(messages),
		Metadata:    metadata,
	}
	s.sessions[session.ID] = session
	return session.ID, nil
}

func (s *MemoryStore) UpdateSession(ctx context.Context, id string, messages []model.ChatMessage, sessionType model.SessionType, metadata map[string]any) (bool, error) {
	if !model.HasCandidateTurn(messages) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	session.Messages = cloneMessages(messages)
	session.SessionType = sessionType
	session.Metadata = metadata
	session.LastUpdated = time.Now()
	return true, nil
}

func (s *MemoryStore) GetSessionByID(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	out := *session
	out.Messages = cloneMessages(session.Messages)
	return &out, nil
}

func (s *MemoryStore) ListSessions(ctx context.Context) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		copied := *session
		copied.Messages = cloneMessages(session.Messages)
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out, nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) Close() {}

// latestOfType must be called with the lock held.
func (s *MemoryStore) latestOfType(sessionType model.SessionType) *model.Session {
	var latest *model.Session
	for _, session := range s.sessions {
		if session.SessionType != sessionType {
			continue
		}
		if latest == nil || session.LastUpdated.After(latest.LastUpdated) {
			latest = session
		}
	}
	return latest
}

func cloneMessages(messages []model.ChatMessage) []model.ChatMessage {
	out := make([]model.ChatMessage, len(messages))
	copy(out, messages)
	return out
}
