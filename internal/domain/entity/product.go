package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del estoque (tabla produtos).
// Quantidade nunca es negativa: toda mutación pasa por el ledger de movimientos.
// Nome es la clave de negocio: una nueva entrada con el mismo nombre acumula
// quantidade sobre el registro existente en vez de duplicarlo.
type Product struct {
	ID            string
	Nome          string          // único, comparación exacta (case-sensitive)
	Descricao     string
	Quantidade    int             // cantidad en mano, >= 0
	Preco         decimal.Decimal // precio unitario (NUMERIC)
	QuantidadeMin int             // umbral mínimo de reposición
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Urgency devuelve la distancia al umbral mínimo. Valores menores (o negativos)
// indican productos más urgentes de reponer; es el criterio de orden del listado.
func (p *Product) Urgency() int {
	return p.Quantidade - p.QuantidadeMin
}
