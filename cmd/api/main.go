package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/zochlan/interview-coach/internal/cache"
	"github.com/zochlan/interview-coach/internal/config"
	"github.com/zochlan/interview-coach/internal/database"
	"github.com/zochlan/interview-coach/internal/gateway"
	"github.com/zochlan/interview-coach/internal/handler"
	"github.com/zochlan/interview-coach/internal/logger"
	"github.com/zochlan/interview-coach/internal/sequencer"
	"github.com/zochlan/interview-coach/internal/store"
)

type application struct {
	Logger    *zap.Logger
	Config    *config.Config
	Store     store.Store
	Gateway   *gateway.Client
	Sequencer *sequencer.Sequencer
	Handler   *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	sessionStore := selectStore(ctx, cfg, log)
	defer sessionStore.Close()

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if cfg.Redis.Addr == "" {
		redisClient = nil
	} else if err := cache.Ping(ctx, redisClient); err != nil {
		sugar.Warnw("redis unavailable, model caching disabled", "err", err)
		redisClient = nil
	}

	gen := gateway.NewClient(cfg.Generator, log)
	gen.OnRateLimit(func(ev gateway.RateLimitEvent) {
		log.Warn("generator rate limited, serving synthesized responses",
			zap.String("endpoint", ev.Endpoint),
			zap.Time("until", ev.Until))
	})

	seq := sequencer.New(gen, log)

	app := &application{
		Logger:    log,
		Config:    cfg,
		Store:     sessionStore,
		Gateway:   gen,
		Sequencer: seq,
		Handler: &handler.Handler{
			Logger:    log,
			Store:     sessionStore,
			Sequencer: seq,
			Gateway:   gen,
			Redis:     redisClient,
			ModelTTL:  cfg.Redis.ModelTTL,
			Env:       cfg.Env,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// selectStore prefers the durable postgres store and degrades to the
// volatile in-memory store when no database is configured or reachable.
func selectStore(ctx context.Context, cfg *config.Config, log *zap.Logger) store.Store {
	sugar := log.Sugar()

	if cfg.DB.DSN == "" {
		sugar.Info("no database configured, using in-memory session store")
		return store.NewMemoryStore()
	}

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns)
	if err != nil {
		sugar.Warnw("database unreachable, falling back to in-memory session store", "err", err)
		return store.NewMemoryStore()
	}

	pg := store.NewPostgresStore(pool)
	if err := pg.EnsureSchema(ctx); err != nil {
		sugar.Warnw("schema setup failed, falling back to in-memory session store", "err", err)
		pool.Close()
		return store.NewMemoryStore()
	}

	sugar.Info("using postgres session store")
	return pg
}
