package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoque3a/estoque-api/internal/domain"
	"github.com/estoque3a/estoque-api/internal/domain/entity"
	"github.com/estoque3a/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, descricao, quantidade, preco, quantidade_minima, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO produtos (id, nome, descricao, quantidade, preco, quantidade_minima, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Nome, product.Descricao, product.Quantidade,
		product.Preco, product.QuantidadeMin, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByNome obtiene un producto por nombre (comparación exacta).
func (r *ProductRepo) GetByNome(ctx context.Context, nome string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE nome = $1`
	return r.scanOne(ctx, query, nome)
}

// GetByNomeForUpdate obtiene el producto por nombre y bloquea la fila (SELECT FOR UPDATE).
// Solo usar dentro de una transacción.
func (r *ProductRepo) GetByNomeForUpdate(ctx context.Context, nome string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE nome = $1 FOR UPDATE`
	return r.scanOne(ctx, query, nome)
}

// GetByIDForUpdate obtiene el producto por ID y bloquea la fila (SELECT FOR UPDATE).
// Solo usar dentro de una transacción.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

// UpdateQuantities actualiza quantidade y quantidade_minima. Descricao y preco no se
// tocan: las entradas repetidas solo acumulan cantidad y renuevan el umbral mínimo.
func (r *ProductRepo) UpdateQuantities(ctx context.Context, id string, quantidade, quantidadeMin int) error {
	query := `
		UPDATE produtos SET quantidade = $2, quantidade_minima = $3, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, id, quantidade, quantidadeMin)
	if err != nil {
		return fmt.Errorf("update produto quantities: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUrgency lista todos los productos ordenados ascendente por la distancia al
// umbral mínimo: los más urgentes de reponer primero. Empates quedan en el orden
// natural del storage.
func (r *ProductRepo) ListByUrgency(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos ORDER BY quantidade - quantidade_minima`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nome, &p.Descricao, &p.Quantidade,
			&p.Preco, &p.QuantidadeMin, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Quantidade,
		&p.Preco, &p.QuantidadeMin, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}
