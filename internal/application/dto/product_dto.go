package dto

import "github.com/shopspring/decimal"

// EntryRequest entrada de stock (POST /cadastro_produto).
// Si ya existe un producto con ese nome, acumula quantidade y sobrescribe
// quantidade_minima; descricao y preco solo se usan al crear.
type EntryRequest struct {
	Nome          string          `json:"nome" form:"nome"`
	Descricao     string          `json:"descricao" form:"descricao"`
	Quantidade    int             `json:"quantidade" form:"quantidade"`
	Preco         decimal.Decimal `json:"preco" form:"preco"`
	QuantidadeMin int             `json:"quantidade_minima" form:"quantidade_minima"`
}

// EntryResponse confirma la entrada con el id del producto resultante.
type EntryResponse struct {
	ProdutoID string `json:"produto_id"`
}

// ProductResponse un producto del listado por urgencia.
type ProductResponse struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	Preco         decimal.Decimal `json:"preco"`
	QuantidadeMin int             `json:"quantidade_minima"`
}
