package core

import "time"

// Investor es un inversor de la cartera. Los tags json reproducen el
// contrato del front: el ID viaja como "_id" string y las fechas en ISO.
type Investor struct {
	ID             string    `json:"_id"`
	Name           string    `json:"name"`
	Corretora      string    `json:"corretora"`
	ValorInvestido float64   `json:"valor_investido"`
	Perfil         string    `json:"perfil"`
	CreatedAt      time.Time `json:"created_at"`
}

// Trip es una viagem planificada.
type Trip struct {
	ID         string    `json:"_id"`
	Titulo     string    `json:"titulo"`
	Destino    string    `json:"destino"`
	DataInicio time.Time `json:"data_inicio"`
	DataFim    time.Time `json:"data_fim"`
	Preco      float64   `json:"preco"`
	CreatedAt  time.Time `json:"created_at"`
}
