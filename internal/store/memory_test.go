package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zochlan/interview-coach/pkg/model"
)

func conversation(answer string) []model.ChatMessage {
	return []model.ChatMessage{
		{Speaker: model.SpeakerInterviewer, Text: "Tell me about yourself.", IsInterviewQuestion: true},
		{Speaker: model.SpeakerCandidate, Text: answer},
	}
}

func TestSaveSkipsSessionsWithoutCandidateTurn(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.SaveSession(ctx, nil, model.SessionTypeInterview, false, nil)
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = s.SaveSession(ctx, []model.ChatMessage{
		{Speaker: model.SpeakerInterviewer, Text: "Tell me about yourself.", IsInterviewQuestion: true},
	}, model.SessionTypeInterview, false, nil)
	require.NoError(t, err)
	assert.Empty(t, id, "interviewer-only transcript must not persist")

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSaveReusesLatestSessionOfType(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.SaveSession(ctx, conversation("I'm a nurse."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.SaveSession(ctx, conversation("I'm a nurse with ICU experience."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second, "saving without forceNew continues the latest session")

	forced, err := s.SaveSession(ctx, conversation("Starting over."), model.SessionTypeInterview, true, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, forced)

	// A different session type never gets folded into the interview session.
	coach, err := s.SaveSession(ctx, conversation("Coach me."), model.SessionTypeCoach, false, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, coach)
	assert.NotEqual(t, forced, coach)
}

func TestUpdateReplacesMessagesWholesale(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.SaveSession(ctx, conversation("First answer."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)

	replacement := conversation("A different transcript entirely.")
	ok, err := s.UpdateSession(ctx, id, replacement, model.SessionTypeInterview, map[string]any{"stage": "behavioral"})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.GetSessionByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "A different transcript entirely.", got.Messages[1].Text)
	assert.Equal(t, "behavioral", got.Metadata["stage"])

	ok, err = s.UpdateSession(ctx, "missing-id", replacement, model.SessionTypeInterview, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.UpdateSession(ctx, id, nil, model.SessionTypeInterview, nil)
	require.NoError(t, err)
	assert.False(t, ok, "empty transcript must not overwrite a saved session")
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.SaveSession(ctx, conversation("Original."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)

	got, err := s.GetSessionByID(ctx, id)
	require.NoError(t, err)
	got.Messages[1].Text = "mutated"

	again, err := s.GetSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Original.", again.Messages[1].Text)

	missing, err := s.GetSessionByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListOrdersByLastUpdated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	interview, err := s.SaveSession(ctx, conversation("Interview answer."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)
	coach, err := s.SaveSession(ctx, conversation("Coach answer."), model.SessionTypeCoach, false, nil)
	require.NoError(t, err)

	_, err = s.UpdateSession(ctx, interview, conversation("Updated interview."), model.SessionTypeInterview, nil)
	require.NoError(t, err)

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, interview, sessions[0].ID, "most recently touched session first")
	assert.Equal(t, coach, sessions[1].ID)
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.SaveSession(ctx, conversation("To be removed."), model.SessionTypeInterview, false, nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteSession(ctx, id))
	got, err := s.GetSessionByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an unknown id is not an error.
	assert.NoError(t, s.DeleteSession(ctx, "nope"))
}

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, "Interview Session", sessionTitle(nil))
	assert.Equal(t, "Interview Session", sessionTitle([]model.ChatMessage{
		{Speaker: model.SpeakerCandidate, Text: "   "},
	}))
	assert.Equal(t, "I'm a nurse.", sessionTitle(conversation("I'm a nurse.")))

	long := "This answer is far longer than the forty character limit for titles."
	title := sessionTitle(conversation(long))
	assert.Equal(t, long[:40]+"…", title)
}
