package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zochlan/interview-coach/pkg/model"
)

// PostgresStore is the durable session store.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the sessions table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS sessions (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	session_type TEXT NOT NULL,
	messages     JSONB NOT NULL,
	metadata     JSONB,
	created_at   TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL
)`
	if _, err := s.db.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure sessions schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveSession(ctx context.Context, messages []model.ChatMessage, sessionType model.SessionType, forceNew bool, metadata map[string]any) (string, error) {
	if !model.HasCandidateTurn(messages) {
		return "", nil
	}

	if !forceNew {
		id, err := s.latestOfType(ctx, sessionType)
		if err != nil {
			return "", err
		}
		if id != "" {
			ok, err := s.UpdateSession(ctx, id, messages, sessionType, metadata)
			if err != nil {
				return "", err
			}
			if ok {
				return id, nil
			}
		}
	}

	msgJSON, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("encode messages: %w", err)
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	id := uuid.NewString()
	now := time.Now()
	const q = `
INSERT INTO sessions (id, title, session_type, messages, metadata, created_at, last_updated)
VALUES ($1, $2, $3, $4, $5, $6, $6)`
	if _, err := s.db.Exec(ctx, q, id, sessionTitle(messages), string(sessionType), msgJSON, metaJSON, now); err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) UpdateSession(ctx context.Context, id string, messages []model.ChatMessage, sessionType model.SessionType, metadata map[string]any) (bool, error) {
	if !model.HasCandidateTurn(messages) {
		return false, nil
	}

	msgJSON, err := json.Marshal(messages)
	if err != nil {
		return false, fmt.Errorf("encode messages: %w", err)
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return false, fmt.Errorf("encode metadata: %w", err)
	}

	const q = `
UPDATE sessions
SET messages = $2, metadata = $3, session_type = $4, last_updated = $5
WHERE id = $1`
	tag, err := s.db.Exec(ctx, q, id, msgJSON, metaJSON, string(sessionType), time.Now())
	if err != nil {
		return false, fmt.Errorf("update session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) GetSessionByID(ctx context.Context, id string) (*model.Session, error) {
	const q = `
SELECT id, title, session_type, messages, metadata, created_at, last_updated
FROM sessions
WHERE id = $1`
	session, err := scanSession(s.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *PostgresStore) ListSessions(ctx context.Context) ([]model.Session, error) {
	const q = `
SELECT id, title, session_type, messages, metadata, created_at, last_updated
FROM sessions
ORDER BY last_updated DESC`
	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, *session)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() {
	s.db.Close()
}

func (s *PostgresStore) latestOfType(ctx context.Context, sessionType model.SessionType) (string, error) {
	const q = `
SELECT id FROM sessions
WHERE session_type = $1
ORDER BY last_updated DESC
LIMIT 1`
	var id string
	err := s.db.QueryRow(ctx, q, string(sessionType)).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find latest session: %w", err)
	}
	return id, nil
}

func scanSession(row pgx.Row) (*model.Session, error) {
	var (
		session  model.Session
		typeStr  string
		msgJSON  []byte
		metaJSON []byte
	)
	if err := row.Scan(&session.ID, &session.Title, &typeStr, &msgJSON, &metaJSON, &session.CreatedAt, &session.LastUpdated); err != nil {
		return nil, err
	}
	session.SessionType = model.SessionType(typeStr)
	if err := json.Unmarshal(msgJSON, &session.Messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &session.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &session, nil
}
