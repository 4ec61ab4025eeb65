package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoque3a/estoque-api/internal/application/dto"
	"github.com/estoque3a/estoque-api/internal/domain"
	"github.com/estoque3a/estoque-api/internal/domain/entity"
	"github.com/estoque3a/estoque-api/internal/domain/repository"
	"github.com/estoque3a/estoque-api/pkg/logger"
)

// StockLedgerUseCase implementa el ledger de estoque: entradas, salidas y consultas.
// Toda mutación de quantidade ocurre dentro de una transacción (TxRunner) con la fila
// del producto bloqueada (SELECT FOR UPDATE), de modo que operaciones concurrentes
// sobre el mismo producto serializan en la base de datos.
type StockLedgerUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	cache        ListingCache // opcional; nil = sin caché
	log          *logger.Logger
}

// NewStockLedgerUseCase construye el caso de uso. cache puede ser nil.
func NewStockLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	cache ListingCache,
	log *logger.Logger,
) *StockLedgerUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockLedgerUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		cache:        cache,
		log:          log,
	}
}

// RegisterEntry registra una entrada de stock y devuelve el id del producto.
// Si ya existe un producto con ese nome: quantidade += in.Quantidade y
// quantidade_minima se sobrescribe con el valor recibido; descricao y preco del
// registro existente no se tocan. Si no existe, se crea con los campos recibidos.
// En ambos casos se agrega exactamente un movimiento 'entrada' en la misma transacción.
func (uc *StockLedgerUseCase) RegisterEntry(ctx context.Context, in dto.EntryRequest, userID string) (string, error) {
	if in.Nome == "" || userID == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Quantidade <= 0 || in.QuantidadeMin < 0 {
		return "", domain.ErrInvalidInput
	}
	if in.Preco.LessThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}

	now := time.Now()
	var produtoID string

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila por nome para que dos entradas concurrentes del mismo
		// producto acumulen en serie y no se pierda ninguna cantidad.
		product, err := productRepo.GetByNomeForUpdate(ctx, in.Nome)
		if err != nil {
			return err
		}
		if product != nil {
			produtoID = product.ID
			newQty := product.Quantidade + in.Quantidade
			if err := productRepo.UpdateQuantities(ctx, product.ID, newQty, in.QuantidadeMin); err != nil {
				return err
			}
		} else {
			produtoID = uuid.New().String()
			product = &entity.Product{
				ID:            produtoID,
				Nome:          in.Nome,
				Descricao:     in.Descricao,
				Quantidade:    in.Quantidade,
				Preco:         in.Preco,
				QuantidadeMin: in.QuantidadeMin,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
		}
		mov := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProdutoID:  produtoID,
			Tipo:       entity.MovementEntrada,
			Quantidade: in.Quantidade,
			UsuarioID:  userID,
			Data:       now,
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return "", err
	}

	uc.invalidateListing(ctx)
	uc.log.Info().
		Str("produto_id", produtoID).
		Str("nome", in.Nome).
		Int("quantidade", in.Quantidade).
		Str("usuario_id", userID).
		Msg("entrada de estoque registrada")
	return produtoID, nil
}

// RegisterExit registra una salida de stock. Devuelve applied=false, sin error y sin
// ningún cambio de estado, cuando la cantidad no es positiva o supera el stock en mano
// (la quantidade nunca queda negativa). En caso de éxito decrementa quantidade y agrega
// un movimiento 'saida' en la misma transacción.
func (uc *StockLedgerUseCase) RegisterExit(ctx context.Context, produtoID string, quantidade int, userID string) (bool, error) {
	if produtoID == "" || userID == "" {
		return false, domain.ErrInvalidInput
	}

	now := time.Now()
	applied := false
	var onHand int

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(ctx, produtoID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		onHand = product.Quantidade
		// Rechazo silencioso: cantidad no positiva o stock insuficiente no es error,
		// solo no aplica (y no se escribe ningún movimiento).
		if quantidade <= 0 || quantidade > product.Quantidade {
			return nil
		}
		if err := productRepo.UpdateQuantities(ctx, product.ID, product.Quantidade-quantidade, product.QuantidadeMin); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:         uuid.New().String(),
			ProdutoID:  produtoID,
			Tipo:       entity.MovementSaida,
			Quantidade: quantidade,
			UsuarioID:  userID,
			Data:       now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if !applied {
		uc.log.Warn().
			Str("produto_id", produtoID).
			Int("quantidade_solicitada", quantidade).
			Int("quantidade_em_mano", onHand).
			Str("usuario_id", userID).
			Msg("salida rechazada sin cambio de estado")
		return false, nil
	}

	uc.invalidateListing(ctx)
	uc.log.Info().
		Str("produto_id", produtoID).
		Int("quantidade", quantidade).
		Str("usuario_id", userID).
		Msg("salida de estoque registrada")
	return true, nil
}

// ListProductsByUrgency devuelve los productos ordenados ascendente por
// (quantidade - quantidade_minima). Pasa por el caché cuando está configurado.
func (uc *StockLedgerUseCase) ListProductsByUrgency(ctx context.Context) ([]dto.ProductResponse, error) {
	if uc.cache != nil {
		if items, ok := uc.cache.GetListing(ctx); ok {
			return items, nil
		}
	}
	products, err := uc.productRepo.ListByUrgency(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponse{
			ID:            p.ID,
			Nome:          p.Nome,
			Descricao:     p.Descricao,
			Quantidade:    p.Quantidade,
			Preco:         p.Preco,
			QuantidadeMin: p.QuantidadeMin,
		})
	}
	if uc.cache != nil {
		uc.cache.SetListing(ctx, items)
	}
	return items, nil
}

// ListMovements devuelve el historial completo de movimientos con el nombre del
// usuario que los registró, del más reciente al más antiguo.
func (uc *StockLedgerUseCase) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.ListWithUser(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:          m.ID,
			ProdutoID:   m.ProdutoID,
			Tipo:        m.Tipo,
			Quantidade:  m.Quantidade,
			UsuarioID:   m.UsuarioID,
			UsuarioNome: m.UsuarioNome,
			Data:        m.Data,
		})
	}
	return items, nil
}

func (uc *StockLedgerUseCase) invalidateListing(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}
