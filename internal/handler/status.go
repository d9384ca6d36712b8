package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zochlan/interview-coach/pkg/response"
)

func (h *Handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok", "env": h.Env})
}

// RateLimitStatus exposes which generator endpoints are currently in
// cooldown, with their expiry times, so the UI can surface a banner while
// synthesized responses are being served.
func (h *Handler) RateLimitStatus(c *gin.Context) {
	response.OK(c, gin.H{"rate_limited": h.Gateway.RateLimitedEndpoints()})
}
