package rate

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterDeniesPastMax(t *testing.T) {
	l := NewMemoryLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "1.2.3.4|/investors")
		if err != nil {
			t.Fatalf("Allow #%d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("hit %d debería pasar", i)
		}
		if want := int64(3 - i); res.Remaining != want {
			t.Errorf("hit %d: Remaining = %d, quiero %d", i, res.Remaining, want)
		}
	}

	res, err := l.Allow(ctx, "1.2.3.4|/investors")
	if err != nil {
		t.Fatalf("Allow #4: %v", err)
	}
	if res.Allowed {
		t.Fatal("hit 4 debería rechazarse")
	}
	if res.Remaining != 0 {
		t.Errorf("Remaining = %d, quiero 0", res.Remaining)
	}
	if res.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, quiero > 0", res.RetryAfter)
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	if res, _ := l.Allow(ctx, "a|/trips"); !res.Allowed {
		t.Fatal("primera clave debería pasar")
	}
	if res, _ := l.Allow(ctx, "b|/trips"); !res.Allowed {
		t.Fatal("otra clave no comparte contador")
	}
	if res, _ := l.Allow(ctx, "a|/trips"); res.Allowed {
		t.Fatal("la primera clave ya agotó su cupo")
	}
}
