package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venda is one sale transaction: exactly one produto sold to one cliente.
// Rows are append-only — there is no update or delete path for vendas.
//
// PrecoUnitario is the price charged at the moment of the sale. It is
// deliberately independent of Produto.Preco so that reports always reflect
// the historical price, not the current catalog price.
type Venda struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataVenda         time.Time `gorm:"index;not null"`
	NumeroNotaFiscal  string    `gorm:"not null"`
	ClienteID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ProdutoID         uuid.UUID `gorm:"type:uuid;index;not null"`
	QuantidadeVendida int       `gorm:"not null"`
	PrecoUnitario     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt         time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}
