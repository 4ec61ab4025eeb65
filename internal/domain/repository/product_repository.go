package repository

import (
	"context"

	"github.com/estoque3a/estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByNome(ctx context.Context, nome string) (*entity.Product, error)

	// GetByNomeForUpdate y GetByIDForUpdate bloquean la fila (SELECT FOR UPDATE).
	// Solo tienen sentido dentro de una transacción: es el punto de serialización
	// de entradas/salidas concurrentes sobre el mismo producto.
	GetByNomeForUpdate(ctx context.Context, nome string) (*entity.Product, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)

	// UpdateQuantities persiste quantidade y quantidade_minima. Descricao y preco
	// no se tocan en entradas repetidas.
	UpdateQuantities(ctx context.Context, id string, quantidade, quantidadeMin int) error

	// ListByUrgency devuelve todos los productos ordenados ascendente por
	// (quantidade - quantidade_minima): los más cercanos o por debajo del mínimo primero.
	ListByUrgency(ctx context.Context) ([]*entity.Product, error)
}
