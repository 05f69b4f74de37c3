package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	svc "github.com/dropDatabas3/pf-zambom-back/internal/http/services/health"
)

func okCheck(ctx context.Context) error   { return nil }
func failCheck(ctx context.Context) error { return errors.New("sin conexión") }

func TestIndex(t *testing.T) {
	c := NewController(svc.NewService(svc.Deps{}))

	rec := httptest.NewRecorder()
	c.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if m["message"] != "API PF-Zambom funcionando" {
		t.Errorf("message = %q", m["message"])
	}
}

func TestHealth(t *testing.T) {
	c := NewController(svc.NewService(svc.Deps{}))

	rec := httptest.NewRecorder()
	c.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatal(err)
	}
	if m["status"] != "ok" || m["service"] != svc.ServiceName {
		t.Errorf("body = %v", m)
	}
}

func TestReady(t *testing.T) {
	run := func(t *testing.T, deps svc.Deps, wantStatus int, wantReady bool) {
		t.Helper()
		c := NewController(svc.NewService(deps))
		rec := httptest.NewRecorder()
		c.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

		if rec.Code != wantStatus {
			t.Fatalf("status = %d, quiero %d", rec.Code, wantStatus)
		}
		var m map[string]bool
		if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
			t.Fatal(err)
		}
		if m["ready"] != wantReady {
			t.Errorf("ready = %v", m["ready"])
		}
	}

	t.Run("db responde", func(t *testing.T) {
		run(t, svc.Deps{DBCheck: okCheck, RedisCheck: okCheck}, http.StatusOK, true)
	})
	t.Run("sin checks configurados", func(t *testing.T) {
		run(t, svc.Deps{}, http.StatusOK, true)
	})
	t.Run("db caída", func(t *testing.T) {
		run(t, svc.Deps{DBCheck: failCheck}, http.StatusServiceUnavailable, false)
	})
	t.Run("redis caído no voltea readiness", func(t *testing.T) {
		run(t, svc.Deps{DBCheck: okCheck, RedisCheck: failCheck}, http.StatusOK, true)
	})
}
