package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	Nome         string          `json:"nome"          validate:"required"`
	Descricao    *string         `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"         validate:"required,gt=0"`
	FornecedorID *string         `json:"fornecedor_id" validate:"omitempty,uuid"`
}

// AtualizarProdutoRequest uses pointers so omitted fields are left untouched.
type AtualizarProdutoRequest struct {
	Nome         *string          `json:"nome"`
	Descricao    *string          `json:"descricao"`
	Preco        *decimal.Decimal `json:"preco"`
	FornecedorID *string          `json:"fornecedor_id" validate:"omitempty,uuid"`
}

type ProdutoResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Descricao    *string         `json:"descricao"`
	Preco        decimal.Decimal `json:"preco"`
	FornecedorID *string         `json:"fornecedor_id"`
}

// ConsultaPrecoResponse is served by the public cached price endpoint.
type ConsultaPrecoResponse struct {
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}
