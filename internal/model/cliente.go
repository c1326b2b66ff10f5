package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a store customer. Email is optional; when present, the recibo
// worker mails a PDF receipt after each sale.
type Cliente struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome     string    `gorm:"index;not null"`
	Email    *string
	Telefone *string
	Endereco *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
