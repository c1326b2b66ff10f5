package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a catalog product. Preco is the CURRENT list price; vendas
// snapshot their own preco_unitario at write time and never read this field
// for historical reports.
type Produto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"index;not null"`
	Descricao *string
	Preco     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// FornecedorID replaces the legacy free-text supplier field with a real FK.
	FornecedorID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Fornecedor *Fornecedor `gorm:"foreignKey:FornecedorID"`
}
