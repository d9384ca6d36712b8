package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/pkg/model"
	"github.com/zochlan/interview-coach/pkg/response"
)

type saveSessionReq struct {
	Messages    []model.ChatMessage `json:"messages"`
	SessionType model.SessionType   `json:"session_type"`
	ForceNew    bool                `json:"force_new"`
	Metadata    map[string]any      `json:"metadata"`
}

// SaveSession persists a transcript. Persistence is best-effort: storage
// failures are logged and reported as an unsaved session, never as an
// error that would interrupt the conversation. A transcript without a
// candidate turn is never stored and yields an empty id.
func (h *Handler) SaveSession(c *gin.Context) {
	var req saveSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.SessionType == "" {
		req.SessionType = model.SessionTypeInterview
	}

	id, err := h.Store.SaveSession(c.Request.Context(), req.Messages, req.SessionType, req.ForceNew, req.Metadata)
	if err != nil {
		h.Logger.Warn("save_session: persistence failed", zap.Error(err))
		response.OK(c, gin.H{"session_id": "", "saved": false})
		return
	}

	response.OK(c, gin.H{"session_id": id, "saved": id != ""})
}

type updateSessionReq struct {
	Messages    []model.ChatMessage `json:"messages"`
	SessionType model.SessionType   `json:"session_type"`
	Metadata    map[string]any      `json:"metadata"`
}

// UpdateSession replaces a stored transcript wholesale.
func (h *Handler) UpdateSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "session id is required")
		return
	}

	var req updateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.SessionType == "" {
		req.SessionType = model.SessionTypeInterview
	}

	updated, err := h.Store.UpdateSession(c.Request.Context(), id, req.Messages, req.SessionType, req.Metadata)
	if err != nil {
		h.Logger.Warn("update_session: persistence failed",
			zap.String("session_id", id),
			zap.Error(err))
		response.OK(c, gin.H{"updated": false})
		return
	}

	response.OK(c, gin.H{"updated": updated})
}

func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "session id is required")
		return
	}

	session, err := h.Store.GetSessionByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("get_session: lookup failed", zap.String("session_id", id), zap.Error(err))
		response.InternalError(c, "failed to load session")
		return
	}
	if session == nil {
		response.NotFound(c, "session not found")
		return
	}

	response.OK(c, session)
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.Store.ListSessions(c.Request.Context())
	if err != nil {
		h.Logger.Error("list_sessions: query failed", zap.Error(err))
		response.InternalError(c, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []model.Session{}
	}

	response.OK(c, sessions)
}

func (h *Handler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "session id is required")
		return
	}

	if err := h.Store.DeleteSession(c.Request.Context(), id); err != nil {
		h.Logger.Error("delete_session: failed", zap.String("session_id", id), zap.Error(err))
		response.InternalError(c, "failed to delete session")
		return
	}

	response.NoContent(c)
}
