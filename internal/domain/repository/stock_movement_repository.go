package repository

import (
	"context"

	"github.com/estoque3a/estoque-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el ledger de movimientos.
// Append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error

	// ListWithUser devuelve todos los movimientos unidos con usuarios.nome,
	// ordenados por data_movimentacao descendente (más reciente primero).
	ListWithUser(ctx context.Context) ([]*entity.StockMovementWithUser, error)
}
