package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoque3a/estoque-api/internal/application/inventory"
	"github.com/estoque3a/estoque-api/internal/domain"
	"github.com/estoque3a/estoque-api/internal/domain/entity"
	"github.com/estoque3a/estoque-api/internal/domain/repository"
	apphttp "github.com/estoque3a/estoque-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el ledger detrás del router real
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID map[string]entity.Product
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.byID[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetByNome(_ context.Context, nome string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Nome == nome {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByNomeForUpdate(ctx context.Context, nome string) (*entity.Product, error) {
	return r.GetByNome(ctx, nome)
}

func (r *memProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) UpdateQuantities(_ context.Context, id string, quantidade, quantidadeMin int) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantidade = quantidade
	p.QuantidadeMin = quantidadeMin
	r.byID[id] = p
	return nil
}

func (r *memProductRepo) ListByUrgency(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		cp := p
		list = append(list, &cp)
	}
	return list, nil
}

type memMovementRepo struct {
	movements []entity.StockMovement
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) ListWithUser(_ context.Context) ([]*entity.StockMovementWithUser, error) {
	var list []*entity.StockMovementWithUser
	for i := len(r.movements) - 1; i >= 0; i-- {
		list = append(list, &entity.StockMovementWithUser{
			StockMovement: r.movements[i],
			UsuarioNome:   testUserNome,
		})
	}
	return list, nil
}

type memTxRunner struct {
	products  *memProductRepo
	movements *memMovementRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movements, r.products)
}

func buildStockApp(t *testing.T) (*fiber.App, *memProductRepo, *memMovementRepo) {
	t.Helper()
	products := &memProductRepo{byID: make(map[string]entity.Product)}
	movements := &memMovementRepo{}
	tx := &memTxRunner{products: products, movements: movements}
	uc := inventory.NewStockLedgerUseCase(tx, products, movements, nil, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:  uc,
		JWTSecret: testJWTSecret,
	})
	return app, products, movements
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del contrato HTTP del ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastroProduto_EntradaCrea201(t *testing.T) {
	app, products, movements := buildStockApp(t)

	resp := postJSON(t, app, "/cadastro_produto",
		`{"nome":"Widget","descricao":"peça","quantidade":10,"preco":"9.90","quantidade_minima":5}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	produtoID := body["produto_id"]
	require.NotEmpty(t, produtoID)

	p, _ := products.GetByID(context.Background(), produtoID)
	require.NotNil(t, p)
	assert.Equal(t, 10, p.Quantidade)
	require.Len(t, movements.movements, 1)
	assert.Equal(t, testUserID, movements.movements[0].UsuarioID, "el movimiento lleva el usuario del token")
}

func TestCadastroProduto_CantidadInvalida400(t *testing.T) {
	app, _, movements := buildStockApp(t)

	resp := postJSON(t, app, "/cadastro_produto",
		`{"nome":"Widget","quantidade":0,"quantidade_minima":5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, movements.movements)
}

func TestCadastroProduto_SinToken401(t *testing.T) {
	app, _, _ := buildStockApp(t)

	req := httptest.NewRequest(http.MethodPost, "/cadastro_produto", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El rechazo de una salida no es un error HTTP: 200 con applied=false y estado intacto.
func TestSaidaProduto_RechazoDevuelve200AppliedFalse(t *testing.T) {
	app, products, movements := buildStockApp(t)

	resp := postJSON(t, app, "/cadastro_produto",
		`{"nome":"Widget","quantidade":5,"preco":"1.00","quantidade_minima":2}`)
	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	produtoID := created["produto_id"]

	resp = postJSON(t, app, "/saida_produto/"+produtoID, `{"quantidade_saida":10}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out["applied"])

	p, _ := products.GetByID(context.Background(), produtoID)
	assert.Equal(t, 5, p.Quantidade, "el stock no debe cambiar")
	assert.Len(t, movements.movements, 1, "sin movimiento de saida")
}

func TestSaidaProduto_Exito200AppliedTrue(t *testing.T) {
	app, products, _ := buildStockApp(t)

	resp := postJSON(t, app, "/cadastro_produto",
		`{"nome":"Widget","quantidade":5,"preco":"1.00","quantidade_minima":2}`)
	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	produtoID := created["produto_id"]

	resp = postJSON(t, app, "/saida_produto/"+produtoID, `{"quantidade_saida":3}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out["applied"])

	p, _ := products.GetByID(context.Background(), produtoID)
	assert.Equal(t, 2, p.Quantidade)
}

func TestSaidaProduto_ProductoInexistente404(t *testing.T) {
	app, _, _ := buildStockApp(t)

	resp := postJSON(t, app, "/saida_produto/no-existe", `{"quantidade_saida":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEstoque_HistorialConUsuario(t *testing.T) {
	app, _, _ := buildStockApp(t)

	resp := postJSON(t, app, "/cadastro_produto",
		`{"nome":"Widget","quantidade":5,"preco":"1.00","quantidade_minima":2}`)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/estoque", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "entrada", items[0]["tipo_movimentacao"])
	assert.Equal(t, testUserNome, items[0]["usuario_nome"])
}
