// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/farrior-homes-api/internal/authz"
	"github.com/carterperez-dev/farrior-homes-api/internal/core"
)

type Handler struct {
	redisStats func() *redis.PoolStats
	redisPing  func(ctx context.Context) error
	mongoPing  func(ctx context.Context) error
	version    string
	startedAt  time.Time
}

type HandlerConfig struct {
	RedisStats func() *redis.PoolStats
	RedisPing  func(ctx context.Context) error
	MongoPing  func(ctx context.Context) error
	Version    string
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		redisStats: cfg.RedisStats,
		redisPing:  cfg.RedisPing,
		mongoPing:  cfg.MongoPing,
		version:    cfg.Version,
		startedAt:  time.Now(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/stats", h.GetSystemStats)
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	identity := authz.FromContext(r.Context())
	if err := authz.Require(identity, authz.CapStatsRead); err != nil {
		core.JSONError(w, r, err)
		return
	}

	ctx := r.Context()

	mongoHealthy := true
	var mongoLatency string
	if h.mongoPing != nil {
		start := time.Now()
		if err := h.mongoPing(ctx); err != nil {
			mongoHealthy = false
		}
		mongoLatency = time.Since(start).String()
	}

	redisHealthy := true
	if h.redisPing != nil {
		if err := h.redisPing(ctx); err != nil {
			redisHealthy = false
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response := SystemStatsResponse{
		Mongo: MongoStatus{
			Healthy: mongoHealthy,
			Latency: mongoLatency,
		},
		Redis: RedisStatus{
			Healthy: redisHealthy,
			Stats:   h.getRedisStats(),
		},
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
			NumGC:        memStats.NumGC,
		},
		Version: h.version,
		Uptime:  time.Since(h.startedAt).String(),
	}

	core.OK(w, r, "System stats retrieved successfully", response)
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
		StaleConns: stats.StaleConns,
	}
}

type SystemStatsResponse struct {
	Mongo   MongoStatus  `json:"mongo"`
	Redis   RedisStatus  `json:"redis"`
	Runtime RuntimeStats `json:"runtime"`
	Version string       `json:"version"`
	Uptime  string       `json:"uptime"`
}

type MongoStatus struct {
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
	StaleConns uint32 `json:"stale_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
