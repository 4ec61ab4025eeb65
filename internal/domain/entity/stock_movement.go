package entity

import "time"

// Tipos de movimiento de estoque (valores persistidos en tipo_movimentacao).
const (
	MovementEntrada = "entrada" // ingreso de stock
	MovementSaida   = "saida"   // retiro de stock
)

// StockMovement representa una fila del ledger movimentacao_estoque.
// El ledger es append-only: los movimientos nunca se actualizan ni se borran,
// y cada cambio de quantidade en produtos tiene exactamente un movimiento
// asociado dentro de la misma transacción.
type StockMovement struct {
	ID         string
	ProdutoID  string
	Tipo       string    // entrada | saida
	Quantidade int       // siempre positivo; el signo lo da Tipo
	UsuarioID  string
	Data       time.Time // data_movimentacao, inmutable desde la creación
}

// StockMovementWithUser movimiento unido con el nombre del usuario que lo registró
// (vista de /estoque).
type StockMovementWithUser struct {
	StockMovement
	UsuarioNome string
}
