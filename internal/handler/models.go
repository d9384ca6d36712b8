package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/cache"
	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/pkg/response"
)

// Models returns the generation models offered upstream. The result is
// cached in redis when available; on any upstream failure the configured
// default model is returned so the UI always has something to select.
func (h *Handler) Models(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Redis != nil {
		cached, err := cache.GetJSON(ctx, h.Redis, cache.ModelsKey)
		if err != nil {
			h.Logger.Debug("models: cache read failed", zap.Error(err))
		} else if cached != "" {
			var list gateway.ModelList
			if json.Unmarshal([]byte(cached), &list) == nil {
				response.OK(c, list)
				return
			}
		}
	}

	list, err := h.Gateway.ListModels(ctx)
	if err != nil {
		h.Logger.Warn("models: upstream listing failed, using default", zap.Error(err))
		response.OK(c, gateway.ModelList{
			Models:       []string{h.Gateway.DefaultModel()},
			DefaultModel: h.Gateway.DefaultModel(),
		})
		return
	}

	if h.Redis != nil {
		if payload, err := json.Marshal(list); err == nil {
			if err := cache.SetJSON(ctx, h.Redis, cache.ModelsKey, string(payload), h.ModelTTL); err != nil {
				h.Logger.Debug("models: cache write failed", zap.Error(err))
			}
		}
	}

	response.OK(c, list)
}
