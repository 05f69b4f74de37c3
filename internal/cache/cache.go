// Package cache provee una abstracción mínima de cache con backends
// intercambiables: memoria (go-cache) para desarrollo y Redis para
// despliegues con más de una réplica.
//
// El KeyProvider de auth guarda aquí el JWKS crudo; cualquier otro
// componente puede usarlo para datos efímeros ya serializados.
package cache

import (
	"strings"
	"time"
)

// Cache define las operaciones mínimas que usan los consumidores.
type Cache interface {
	Get(key string) (value []byte, ok bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// Config selecciona el backend y sus parámetros.
type Config struct {
	Kind  string // "memory" | "redis"
	Redis struct {
		Addr   string
		DB     int
		Prefix string
	}
	Memory struct {
		DefaultTTL string
	}
}

// Open crea el cache según la configuración. Default: memoria.
func Open(cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Kind) {
	case "redis":
		return NewRedis(cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix), nil
	default:
		d, _ := time.ParseDuration(cfg.Memory.DefaultTTL)
		if d == 0 {
			d = 2 * time.Minute
		}
		return NewMemory(d), nil
	}
}
