// Package trips define el contrato de entrada de /trips.
package trips

import (
	"github.com/dropDatabas3/pf-zambom-back/internal/http/helpers"
	"github.com/dropDatabas3/pf-zambom-back/internal/store/core"
)

const (
	MsgRequired = "Campos obrigatórios: titulo, destino, data_inicio, data_fim, preco"
	MsgFormato  = "Formato de data inválido (YYYY-MM-DD) ou preço inválido"
)

// ParseCreate valida el body de POST /trips. Alias aceptados: title,
// destination, start_date, end_date, price. Las fechas pueden venir
// como fecha sola o timestamp ISO completo.
func ParseCreate(body map[string]any) (*core.Trip, string) {
	titulo, _ := helpers.PickTruthy(body, "titulo", "title").(string)
	destino, _ := helpers.PickTruthy(body, "destino", "destination").(string)
	dataInicio := helpers.PickTruthy(body, "data_inicio", "start_date")
	dataFim := helpers.PickTruthy(body, "data_fim", "end_date")
	preco := helpers.PickTruthy(body, "preco", "price")

	if titulo == "" || destino == "" || dataInicio == nil || dataFim == nil || preco == nil {
		return nil, MsgRequired
	}

	inicio, okInicio := helpers.ParseISODate(dataInicio)
	fim, okFim := helpers.ParseISODate(dataFim)
	f, okPreco := helpers.ToFloat(preco)
	if !okInicio || !okFim || !okPreco {
		return nil, MsgFormato
	}

	return &core.Trip{
		Titulo:     titulo,
		Destino:    destino,
		DataInicio: inicio,
		DataFim:    fim,
		Preco:      f,
	}, ""
}
