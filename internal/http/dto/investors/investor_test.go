package investors

import "testing"

func TestParseCreate(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{
			name: "campos canónicos",
			body: map[string]any{
				"name": "Ana", "corretora": "XP", "valor_investido": 1500.5, "perfil": "moderado",
			},
		},
		{
			name: "alias nome y valor",
			body: map[string]any{
				"nome": "Bruno", "corretora": "Rico", "valor": 200.0, "perfil": "arrojado",
			},
		},
		{
			name: "valor como string numérico",
			body: map[string]any{
				"name": "Clara", "corretora": "XP", "valor_investido": "980.75", "perfil": "conservador",
			},
		},
		{
			name:    "falta perfil",
			body:    map[string]any{"name": "Ana", "corretora": "XP", "valor_investido": 10.0},
			wantMsg: MsgRequired,
		},
		{
			name:    "name vacío sin alias",
			body:    map[string]any{"name": "", "corretora": "XP", "valor_investido": 10.0, "perfil": "x"},
			wantMsg: MsgRequired,
		},
		{
			name: "valor cero cuenta como ausente",
			body: map[string]any{
				"name": "Ana", "corretora": "XP", "valor_investido": 0.0, "perfil": "x",
			},
			wantMsg: MsgRequired,
		},
		{
			name: "valor no numérico",
			body: map[string]any{
				"name": "Ana", "corretora": "XP", "valor_investido": "mucho", "perfil": "x",
			},
			wantMsg: MsgValorInvalido,
		},
		{
			name:    "body vacío",
			body:    map[string]any{},
			wantMsg: MsgRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv, msg := ParseCreate(tc.body)
			if msg != tc.wantMsg {
				t.Fatalf("msg = %q, quiero %q", msg, tc.wantMsg)
			}
			if tc.wantMsg == "" && inv == nil {
				t.Fatal("esperaba Investor")
			}
		})
	}
}

func TestParseCreateValues(t *testing.T) {
	inv, msg := ParseCreate(map[string]any{
		"nome": "Bruno", "corretora": "Rico", "valor": "350.25", "perfil": "arrojado",
	})
	if msg != "" {
		t.Fatalf("msg = %q", msg)
	}
	if inv.Name != "Bruno" || inv.Corretora != "Rico" || inv.ValorInvestido != 350.25 || inv.Perfil != "arrojado" {
		t.Errorf("Investor = %+v", inv)
	}
}

func TestParseCreatePrefersCanonicalKey(t *testing.T) {
	inv, msg := ParseCreate(map[string]any{
		"name": "Ana", "nome": "Otra", "corretora": "XP",
		"valor_investido": 100.0, "valor": 999.0, "perfil": "x",
	})
	if msg != "" {
		t.Fatalf("msg = %q", msg)
	}
	if inv.Name != "Ana" || inv.ValorInvestido != 100.0 {
		t.Errorf("la clave canónica gana: %+v", inv)
	}
}
