package dto

type CriarFornecedorRequest struct {
	Nome  string  `json:"nome"  validate:"required"`
	CNPJ  string  `json:"cnpj"  validate:"required"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type AtualizarFornecedorRequest struct {
	Nome  *string `json:"nome"`
	CNPJ  *string `json:"cnpj"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type FornecedorResponse struct {
	ID    string  `json:"id"`
	Nome  string  `json:"nome"`
	CNPJ  string  `json:"cnpj"`
	Email *string `json:"email"`
}
