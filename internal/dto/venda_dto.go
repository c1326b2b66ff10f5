package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GravarVendaRequest is the body of POST /v1/vendas.
// DataVenda is RFC 3339; empty means "now" (server clock, UTC).
type GravarVendaRequest struct {
	ClienteID        string          `json:"cliente_id"         validate:"required,uuid"`
	ProdutoID        string          `json:"produto_id"         validate:"required,uuid"`
	Quantidade       int             `json:"quantidade"         validate:"required,min=1"`
	PrecoUnitario    decimal.Decimal `json:"preco_unitario"     validate:"required,gt=0"`
	DataVenda        string          `json:"data_venda"         validate:"omitempty"`
	NumeroNotaFiscal string          `json:"numero_nota_fiscal" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// VendaResponse is returned by POST /v1/vendas with the store-assigned id.
type VendaResponse struct {
	ID               string          `json:"id"`
	DataVenda        string          `json:"data_venda"`
	NumeroNotaFiscal string          `json:"numero_nota_fiscal"`
	ClienteID        string          `json:"cliente_id"`
	ProdutoID        string          `json:"produto_id"`
	Quantidade       int             `json:"quantidade"`
	PrecoUnitario    decimal.Decimal `json:"preco_unitario"`
}

// VendaDetalhadaResponse is one row per venda in the detailed reports.
type VendaDetalhadaResponse struct {
	VendaID       string          `json:"venda_id"`
	DataVenda     string          `json:"data_venda"`
	ProdutoNome   string          `json:"produto_nome"`
	ClienteNome   string          `json:"cliente_nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// VendaSumarizadaProdutoResponse is one aggregate row per produto.
// TotalVendido = Σ quantidade × preco_unitario over the group (exact decimal).
type VendaSumarizadaProdutoResponse struct {
	ProdutoNome     string          `json:"produto_nome"`
	TotalQuantidade int             `json:"total_quantidade"`
	TotalVendido    decimal.Decimal `json:"total_vendido"`
}

// ProdutoVendidoResponse is the nested per-product breakdown inside the
// by-cliente summary.
type ProdutoVendidoResponse struct {
	ProdutoNome string `json:"produto_nome"`
	Quantidade  int    `json:"quantidade"`
}

// VendaSumarizadaClienteResponse is one aggregate row per cliente.
type VendaSumarizadaClienteResponse struct {
	ClienteNome      string                   `json:"cliente_nome"`
	TotalVendido     decimal.Decimal          `json:"total_vendido"`
	ProdutosVendidos []ProdutoVendidoResponse `json:"produtos_vendidos"`
}
