package helpers

import (
	"testing"
	"time"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"string vacío", "", false},
		{"string", "x", true},
		{"cero", float64(0), false},
		{"número", 1.5, true},
		{"false", false, false},
		{"true", true, true},
		{"lista vacía", []any{}, false},
		{"lista", []any{1}, true},
		{"mapa vacío", map[string]any{}, false},
	}
	for _, tc := range cases {
		if got := Truthy(tc.in); got != tc.want {
			t.Errorf("%s: Truthy(%v) = %v, quiero %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestPickTruthy(t *testing.T) {
	m := map[string]any{"name": "", "nome": "Ana", "valor": float64(0)}

	if got := PickTruthy(m, "name", "nome"); got != "Ana" {
		t.Errorf("alias: got %v", got)
	}
	if got := PickTruthy(m, "valor", "valor_investido"); got != nil {
		t.Errorf("cero cae al alias y no hay: got %v", got)
	}
	if got := PickTruthy(m, "inexistente"); got != nil {
		t.Errorf("clave ausente: got %v", got)
	}
}

func TestToFloat(t *testing.T) {
	if f, ok := ToFloat(10.5); !ok || f != 10.5 {
		t.Errorf("float64: %v %v", f, ok)
	}
	if f, ok := ToFloat("10.5"); !ok || f != 10.5 {
		t.Errorf("string numérico: %v %v", f, ok)
	}
	if f, ok := ToFloat(" 10 "); !ok || f != 10 {
		t.Errorf("string con espacios: %v %v", f, ok)
	}
	if _, ok := ToFloat("abc"); ok {
		t.Error("string no numérico debería fallar")
	}
	if _, ok := ToFloat(true); ok {
		t.Error("bool debería fallar")
	}
	if _, ok := ToFloat(nil); ok {
		t.Error("nil debería fallar")
	}
}

func TestParseISODate(t *testing.T) {
	ok := []string{
		"2024-05-01",
		"2024-05-01T10:30:00",
		"2024-05-01 10:30:00",
		"2024-05-01T10:30:00.123456",
		"2024-05-01T10:30:00Z",
		"2024-05-01T10:30:00+02:00",
	}
	for _, s := range ok {
		if _, parsed := ParseISODate(s); !parsed {
			t.Errorf("ParseISODate(%q) debería aceptar", s)
		}
	}

	if tm, _ := ParseISODate("2024-05-01"); !tm.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("fecha sola = %v", tm)
	}

	bad := []any{"01/05/2024", "ayer", "", float64(123), nil}
	for _, v := range bad {
		if _, parsed := ParseISODate(v); parsed {
			t.Errorf("ParseISODate(%v) debería rechazar", v)
		}
	}
}
