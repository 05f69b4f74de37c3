// Package investors define el contrato de entrada de /investors.
package investors

import (
	"github.com/dropDatabas3/pf-zambom-back/internal/http/helpers"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

// Mensajes de validación, textuales para el front.
const (
	MsgRequired      = "Campos obrigatórios: name, corretora, valor_investido, perfil"
	MsgValorInvalido = "valor_investido deve ser numérico"
)

// ParseCreate valida el body de POST /investors y arma el Investor.
// Acepta los alias históricos (nome, valor); un campo vacío o en cero
// cuenta como ausente. El string de retorno es el mensaje para el
// cliente, vacío si está todo bien.
func ParseCreate(body map[string]any) (*core.Investor, string) {
	name, _ := helpers.PickTruthy(body, "name", "nome").(string)
	corretora, _ := helpers.PickTruthy(body, "corretora").(string)
	valor := helpers.PickTruthy(body, "valor_investido", "valor")
	perfil, _ := helpers.PickTruthy(body, "perfil").(string)

	if name == "" || corretora == "" || valor == nil || perfil == "" {
		return nil, MsgRequired
	}
	f, ok := helpers.ToFloat(valor)
	if !ok {
		return nil, MsgValorInvalido
	}

	return &core.Investor{
		Name:           name,
		Corretora:      corretora,
		ValorInvestido: f,
		Perfil:         perfil,
	}, ""
}
