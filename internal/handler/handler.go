package handler

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/internal/sequencer"
	"github.com/zochlan/interview-coach/internal/store"
)

type Handler struct {
	Logger    *zap.Logger
	Store     store.Store
	Sequencer *sequencer.Sequencer
	Gateway   *gateway.Client
	// Redis is optional; a nil client disables model-list caching.
	Redis    *redis.Client
	ModelTTL time.Duration
	Env      string
}
