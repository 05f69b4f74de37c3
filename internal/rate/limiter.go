// Package rate implementa rate limiting de ventana fija para la API.
// La variante Redis comparte estado entre réplicas; la de memoria
// alcanza para desarrollo o despliegues de una sola instancia.
package rate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	WindowTTL   time.Duration
	CurrentHits int64
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// =================================================================================
// REDIS (ventana fija, INCR + EXPIRE)
// =================================================================================

// RedisLimiter cuenta hits por clave en la ventana actual. La clave
// incluye el inicio de ventana, así que el contador nunca se "corre":
// al cambiar de ventana simplemente se escribe otra clave.
type RedisLimiter struct {
	Client *rdb.Client
	Prefix string
	Max    int64
	Window time.Duration
}

func NewRedisLimiter(client *rdb.Client, prefix string, max int, window time.Duration) *RedisLimiter {
	if prefix == "" {
		prefix = "rl:"
	}
	return &RedisLimiter{Client: client, Prefix: prefix, Max: int64(max), Window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := time.Now().UTC()
	winStart := now.Truncate(l.Window)
	winEnd := winStart.Add(l.Window)
	redisKey := fmt.Sprintf("%s%s:%d", l.Prefix, strings.ReplaceAll(key, " ", "_"), winStart.Unix())

	pipe := l.Client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// Un segundo de gracia sobre la ventana: la clave ya no se consulta
	// después del corte, solo tiene que sobrevivir hasta entonces.
	pipe.Expire(ctx, redisKey, l.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, err
	}

	return l.result(incr.Val(), winEnd), nil
}

func (l *RedisLimiter) result(hits int64, winEnd time.Time) Result {
	remaining := l.Max - hits
	if remaining < 0 {
		remaining = 0
	}
	ttl := time.Until(winEnd)
	if ttl < 0 {
		ttl = 0
	}
	res := Result{
		Allowed:     hits <= l.Max,
		Remaining:   remaining,
		CurrentHits: hits,
		WindowTTL:   ttl,
	}
	if !res.Allowed {
		res.RetryAfter = ttl
	}
	return res
}

// =================================================================================
// MEMORIA (misma semántica, sin Redis)
// =================================================================================

type MemoryLimiter struct {
	mu     sync.Mutex
	hits   map[string]*windowCount
	Max    int64
	Window time.Duration
}

type windowCount struct {
	start time.Time
	n     int64
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		hits:   make(map[string]*windowCount),
		Max:    int64(max),
		Window: window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now().UTC()
	winStart := now.Truncate(l.Window)
	winEnd := winStart.Add(l.Window)

	l.mu.Lock()
	wc, ok := l.hits[key]
	if !ok || wc.start.Before(winStart) {
		wc = &windowCount{start: winStart}
		l.hits[key] = wc
	}
	wc.n++
	hits := wc.n
	// Poda oportunista de ventanas vencidas para que el mapa no crezca
	// sin límite.
	if len(l.hits) > 4096 {
		for k, v := range l.hits {
			if v.start.Before(winStart) {
				delete(l.hits, k)
			}
		}
	}
	l.mu.Unlock()

	remaining := l.Max - hits
	if remaining < 0 {
		remaining = 0
	}
	res := Result{
		Allowed:     hits <= l.Max,
		Remaining:   remaining,
		CurrentHits: hits,
		WindowTTL:   time.Until(winEnd),
	}
	if !res.Allowed {
		res.RetryAfter = res.WindowTTL
	}
	return res, nil
}
