package dto

import "time"

// ExitRequest retiro de stock (POST /saida_produto/:id).
type ExitRequest struct {
	QuantidadeSaida int `json:"quantidade_saida" form:"quantidade_saida"`
}

// ExitResponse resultado del retiro. Applied=false indica que el retiro fue
// rechazado sin cambio de estado (cantidad no positiva o stock insuficiente).
type ExitResponse struct {
	Applied bool `json:"applied"`
}

// MovementResponse una fila del historial de movimientos (GET /estoque).
type MovementResponse struct {
	ID          string    `json:"id"`
	ProdutoID   string    `json:"produto_id"`
	Tipo        string    `json:"tipo_movimentacao"`
	Quantidade  int       `json:"quantidade"`
	UsuarioID   string    `json:"usuario_id"`
	UsuarioNome string    `json:"usuario_nome"`
	Data        time.Time `json:"data_movimentacao"`
}
