package trips

import (
	"testing"
	"time"
)

func validBody() map[string]any {
	return map[string]any{
		"titulo":      "Férias",
		"destino":     "Lisboa",
		"data_inicio": "2026-01-10",
		"data_fim":    "2026-01-20",
		"preco":       4500.0,
	}
}

func TestParseCreate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{name: "ok", mutate: func(m map[string]any) {}},
		{
			name: "alias en inglés",
			mutate: func(m map[string]any) {
				delete(m, "titulo")
				delete(m, "destino")
				delete(m, "data_inicio")
				delete(m, "data_fim")
				delete(m, "preco")
				m["title"] = "Holidays"
				m["destination"] = "Lisbon"
				m["start_date"] = "2026-01-10"
				m["end_date"] = "2026-01-20"
				m["price"] = "4500"
			},
		},
		{
			name: "timestamp completo",
			mutate: func(m map[string]any) {
				m["data_inicio"] = "2026-01-10T09:30:00"
				m["data_fim"] = "2026-01-20T18:00:00Z"
			},
		},
		{
			name:    "falta destino",
			mutate:  func(m map[string]any) { delete(m, "destino") },
			wantMsg: MsgRequired,
		},
		{
			name:    "preco cero cuenta como ausente",
			mutate:  func(m map[string]any) { m["preco"] = 0.0 },
			wantMsg: MsgRequired,
		},
		{
			name:    "fecha con formato brasileño",
			mutate:  func(m map[string]any) { m["data_inicio"] = "10/01/2026" },
			wantMsg: MsgFormato,
		},
		{
			name:    "fecha numérica",
			mutate:  func(m map[string]any) { m["data_fim"] = 123.0 },
			wantMsg: MsgFormato,
		},
		{
			name:    "preco no numérico",
			mutate:  func(m map[string]any) { m["preco"] = "caro" },
			wantMsg: MsgFormato,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validBody()
			tc.mutate(body)
			trip, msg := ParseCreate(body)
			if msg != tc.wantMsg {
				t.Fatalf("msg = %q, quiero %q", msg, tc.wantMsg)
			}
			if tc.wantMsg == "" && trip == nil {
				t.Fatal("esperaba Trip")
			}
		})
	}
}

func TestParseCreateValues(t *testing.T) {
	trip, msg := ParseCreate(validBody())
	if msg != "" {
		t.Fatalf("msg = %q", msg)
	}
	if trip.Titulo != "Férias" || trip.Destino != "Lisboa" || trip.Preco != 4500.0 {
		t.Errorf("Trip = %+v", trip)
	}
	if !trip.DataInicio.Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DataInicio = %v", trip.DataInicio)
	}
	if !trip.DataFim.Equal(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DataFim = %v", trip.DataFim)
	}
}
