package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoque3a/estoque-api/internal/application/auth"
	"github.com/estoque3a/estoque-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	LedgerUC  *inventory.StockLedgerUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Las rutas conservan los paths del
// formulario original (/autenticacao, /cadastro_produto, etc.).
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/autenticacao", authHandler.Login)
	app.Post("/cadastro_usuario", authHandler.Register)

	// Ledger de estoque (requiere Bearer Token)
	stockHandler := NewStockHandler(deps.LedgerUC)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/cadastro_produto", stockHandler.RegisterEntry)
	protected.Get("/cadastro_produto", stockHandler.ListProducts)
	protected.Post("/saida_produto/:id", stockHandler.RegisterExit)
	protected.Get("/estoque", stockHandler.ListMovements)
}
