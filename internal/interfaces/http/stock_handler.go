package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque3a/estoque-api/internal/application/dto"
	"github.com/estoque3a/estoque-api/internal/application/inventory"
	"github.com/estoque3a/estoque-api/internal/domain"
)

// StockHandler maneja entradas, salidas y consultas del ledger de estoque.
type StockHandler struct {
	uc *inventory.StockLedgerUseCase
}

// NewStockHandler construye el handler del ledger.
func NewStockHandler(uc *inventory.StockLedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Entrada de stock (crea o acumula producto)
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryRequest  true  "nome, descricao, quantidade, preco, quantidade_minima"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /cadastro_produto [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.EntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	produtoID, err := h.uc.RegisterEntry(c.Context(), in, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade debe ser positiva y nome no vacío"})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EntryResponse{ProdutoID: produtoID})
}

// ListProducts godoc
// @Summary      Listado de productos por urgencia de reposición
// @Tags         estoque
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /cadastro_produto [get]
func (h *StockHandler) ListProducts(c *fiber.Ctx) error {
	items, err := h.uc.ListProductsByUrgency(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(items)
}

// RegisterExit godoc
// @Summary      Salida de stock
// @Description  Devuelve applied=false (sin error) cuando la cantidad no es positiva o supera el stock en mano.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "id del producto"
// @Param        body  body  dto.ExitRequest  true  "quantidade_saida"
// @Success      200   {object}  dto.ExitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /saida_produto/{id} [post]
func (h *StockHandler) RegisterExit(c *fiber.Ctx) error {
	produtoID := c.Params("id")
	var in dto.ExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applied, err := h.uc.RegisterExit(c.Context(), produtoID, in.QuantidadeSaida, GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return internalError(c)
	}
	return c.JSON(dto.ExitResponse{Applied: applied})
}

// ListMovements godoc
// @Summary      Historial de movimientos con usuario
// @Tags         estoque
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /estoque [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	items, err := h.uc.ListMovements(c.Context())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(items)
}

// internalError respuesta genérica 500: los detalles quedan en el log, nunca en el cliente.
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
