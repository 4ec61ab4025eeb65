package postgres

import (
	"context"
	"fmt"

	"github.com/estoque3a/estoque-api/internal/domain/entity"
	"github.com/estoque3a/estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El ledger es append-only: este repo solo inserta y lista.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de estoque.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO movimentacao_estoque (id, produto_id, tipo_movimentacao, quantidade, usuario_id, data_movimentacao)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProdutoID, movement.Tipo,
		movement.Quantidade, movement.UsuarioID, movement.Data,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// ListWithUser lista todos los movimientos unidos con el nombre del usuario,
// ordenados por data_movimentacao descendente (más reciente primero).
func (r *StockMovementRepo) ListWithUser(ctx context.Context) ([]*entity.StockMovementWithUser, error) {
	query := `
		SELECT m.id, m.produto_id, m.tipo_movimentacao, m.quantidade, m.usuario_id, m.data_movimentacao, u.nome
		FROM movimentacao_estoque AS m
		JOIN usuarios AS u ON m.usuario_id = u.id
		ORDER BY m.data_movimentacao DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementWithUser
	for rows.Next() {
		var m entity.StockMovementWithUser
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade,
			&m.UsuarioID, &m.Data, &m.UsuarioNome); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
