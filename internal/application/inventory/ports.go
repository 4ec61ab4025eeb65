package inventory

import (
	"context"

	"github.com/estoque3a/estoque-api/internal/application/dto"
	"github.com/estoque3a/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es la frontera de atomicidad del ledger: la mutación de quantidade
// y el movimiento correspondiente se confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ListingCache caché opcional del listado por urgencia. Las implementaciones deben
// tratar fallos del backend como miss (el caché nunca rompe una lectura).
type ListingCache interface {
	GetListing(ctx context.Context) ([]dto.ProductResponse, bool)
	SetListing(ctx context.Context, items []dto.ProductResponse)
	Invalidate(ctx context.Context)
}
