package middlewares

import (
	"net/http"
	"testing"
)

// RequireAdmin corre siempre detrás de RequireAuth, así que los tests
// arman la cadena completa con tokens del emisor de prueba.

func adminChain(t *testing.T, is *issuer, p *probe) http.Handler {
	t.Helper()
	return Chain(p.handler(), RequireAuth(is.verifier()), RequireAdmin())
}

func TestRequireAdminWithoutClaimsIs401(t *testing.T) {
	// Cadena mal armada: RequireAdmin solo, sin RequireAuth adelante.
	p := &probe{}
	rec := get(RequireAdmin()(p.handler()), "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if p.called {
		t.Error("el handler protegido no debió correr")
	}
}

func TestRequireAdminRejectsPlainUser(t *testing.T) {
	is := newIssuer(t)
	p := &probe{}

	rec := get(adminChain(t, is, p), "Bearer "+is.token(t, nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorField(t, rec, "message"); got != "Admin role required" {
		t.Errorf("message = %q", got)
	}
	if p.called {
		t.Error("el handler protegido no debió correr")
	}
}

func TestRequireAdminAcceptsAdminShapes(t *testing.T) {
	cases := []struct {
		name  string
		extra map[string]any
	}{
		{"claim roles", map[string]any{"roles": []string{"admin"}}},
		{"claim role suelto", map[string]any{"role": "Admin"}},
		{"permissions rbac", map[string]any{"permissions": []string{"delete:trip"}}},
		{"claim namespaced", map[string]any{"https://pf-zambom.app/roles": []string{"admin"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := newIssuer(t)
			p := &probe{}

			rec := get(adminChain(t, is, p), "Bearer "+is.token(t, tc.extra))

			if rec.Code != http.StatusNoContent {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if !p.called {
				t.Fatal("el handler protegido debió correr")
			}
		})
	}
}
