package model

import (
	"time"

	"github.com/google/uuid"
)

// Fornecedor is a supplier.
type Fornecedor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CNPJ      string    `gorm:"column:cnpj;uniqueIndex;not null"`
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
