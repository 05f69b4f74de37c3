package auth

import "testing"

func TestHasRequiredScopes(t *testing.T) {
	cases := []struct {
		name     string
		claims   map[string]any
		required []string
		want     bool
	}{
		{
			name:     "scope string con el requerido",
			claims:   map[string]any{"scope": "read:trips write:trips"},
			required: []string{"read:trips"},
			want:     true,
		},
		{
			name:     "permissions sin claim scope",
			claims:   map[string]any{"permissions": []any{"read:trips"}},
			required: []string{"read:trips"},
			want:     true,
		},
		{
			name:     "mezcla scope y permissions",
			claims:   map[string]any{"scope": "read:investors", "permissions": []any{"write:investors"}},
			required: []string{"read:investors", "write:investors"},
			want:     true,
		},
		{
			name:     "sin ninguna claim",
			claims:   map[string]any{"sub": "auth0|123"},
			required: []string{"read:trips"},
			want:     false,
		},
		{
			name:     "falta uno de los requeridos",
			claims:   map[string]any{"scope": "read:trips"},
			required: []string{"read:trips", "write:trips"},
			want:     false,
		},
		{
			name:     "comparación sensible a mayúsculas",
			claims:   map[string]any{"scope": "Read:Trips"},
			required: []string{"read:trips"},
			want:     false,
		},
		{
			name:     "sin requeridos siempre pasa",
			claims:   map[string]any{},
			required: nil,
			want:     true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasRequiredScopes(tc.claims, tc.required); got != tc.want {
				t.Fatalf("HasRequiredScopes(%v, %v) = %v, want %v", tc.claims, tc.required, got, tc.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]any
		want   bool
	}{
		{
			name:   "permissions con delete:trip",
			claims: map[string]any{"permissions": []any{"read:trips", "delete:trip"}},
			want:   true,
		},
		{
			name:   "permissions con delete:investor",
			claims: map[string]any{"permissions": []any{"delete:investor"}},
			want:   true,
		},
		{
			name:   "role string con otra capitalización",
			claims: map[string]any{"role": "Admin"},
			want:   true,
		},
		{
			name:   "roles lista con admin",
			claims: map[string]any{"roles": []any{"editor", "ADMIN"}},
			want:   true,
		},
		{
			name:   "claim namespaced con admin",
			claims: map[string]any{"https://example.com/roles": []any{"admin"}},
			want:   true,
		},
		{
			name:   "roles vacía cae a role",
			claims: map[string]any{"roles": []any{}, "role": "admin"},
			want:   true,
		},
		{
			name:   "roles editor sin otros marcadores",
			claims: map[string]any{"roles": []any{"editor"}},
			want:   false,
		},
		{
			name:   "claim namespaced string no cuenta",
			claims: map[string]any{"https://example.com/roles": "admin"},
			want:   false,
		},
		{
			name:   "permissions sin permisos de borrado",
			claims: map[string]any{"permissions": []any{"read:trips", "write:trips"}},
			want:   false,
		},
		{
			name:   "claims vacías",
			claims: map[string]any{},
			want:   false,
		},
		{
			name:   "claims nil",
			claims: nil,
			want:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsAdmin(tc.claims); got != tc.want {
				t.Fatalf("IsAdmin(%v) = %v, want %v", tc.claims, got, tc.want)
			}
		})
	}
}
