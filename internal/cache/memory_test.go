package cache

import (
	"testing"
	"time"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory(time.Minute)

	if _, ok := m.Get("k"); ok {
		t.Fatal("Get sobre cache vacío debe ser miss")
	}

	m.Set("k", []byte("v1"), time.Minute)
	got, ok := m.Get("k")
	if !ok || string(got) != "v1" {
		t.Fatalf("Get = %q, %v; want v1, true", got, ok)
	}

	// Set sobre la misma key reemplaza el valor
	m.Set("k", []byte("v2"), time.Minute)
	got, _ = m.Get("k")
	if string(got) != "v2" {
		t.Fatalf("Get tras overwrite = %q, want v2", got)
	}

	m.Delete("k")
	if _, ok := m.Get("k"); ok {
		t.Fatal("Get tras Delete debe ser miss")
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory(time.Minute)

	m.Set("efimero", []byte("x"), 15*time.Millisecond)
	if _, ok := m.Get("efimero"); !ok {
		t.Fatal("la entrada recién seteada debe estar viva")
	}

	time.Sleep(40 * time.Millisecond)
	if _, ok := m.Get("efimero"); ok {
		t.Fatal("la entrada debe expirar pasado su TTL")
	}
}

func TestMemoryNonBytesIsMiss(t *testing.T) {
	m := NewMemory(time.Minute)

	// una entrada plantada con otro tipo no debe romper a los consumidores
	m.c.Set("raro", 42, time.Minute)
	if _, ok := m.Get("raro"); ok {
		t.Fatal("una entrada que no es []byte debe contar como miss")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	var cfg Config
	c, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := c.(*Mem); !ok {
		t.Fatalf("Open sin kind = %T, want *Mem", c)
	}

	cfg.Kind = "redis"
	cfg.Redis.Addr = "localhost:6379"
	c, err = Open(cfg)
	if err != nil {
		t.Fatalf("Open redis: %v", err)
	}
	// el cliente no marca error hasta la primera operación, acá solo
	// interesa que la selección de backend respete el kind
	if _, ok := c.(*Redis); !ok {
		t.Fatalf("Open kind=redis = %T, want *Redis", c)
	}
}
