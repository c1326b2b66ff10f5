package dto

type CriarClienteRequest struct {
	Nome     string  `json:"nome"     validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

type AtualizarClienteRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
}
