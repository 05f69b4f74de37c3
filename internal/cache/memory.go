package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Mem es el backend en memoria para desarrollo y tests.
type Mem struct{ c *gocache.Cache }

// NewMemory crea un cache en memoria con TTL por defecto.
func NewMemory(defaultTTL time.Duration) *Mem {
	return &Mem{c: gocache.New(defaultTTL, time.Minute)}
}

func (m *Mem) Get(k string) ([]byte, bool) {
	v, ok := m.c.Get(k)
	if !ok {
		return nil, false
	}
	// Una entrada que no sea []byte cuenta como miss.
	b, ok := v.([]byte)
	return b, ok
}

func (m *Mem) Set(k string, v []byte, ttl time.Duration) { m.c.Set(k, v, ttl) }
func (m *Mem) Delete(k string)                           { m.c.Delete(k) }
