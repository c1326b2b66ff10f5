package service

import "errors"

// Sentinel errors returned by the services. Handlers map them with errors.Is:
// reference/lookup failures become 400/404, everything else is treated as a
// persistence failure and becomes a 500.
var (
	ErrClienteNaoEncontrado    = errors.New("cliente não encontrado")
	ErrProdutoNaoEncontrado    = errors.New("produto não encontrado")
	ErrFornecedorNaoEncontrado = errors.New("fornecedor não encontrado")
	ErrUsuarioNaoEncontrado    = errors.New("usuário não encontrado")
	ErrVendaNaoEncontrada      = errors.New("venda não encontrada")
	ErrCredenciaisInvalidas    = errors.New("credenciais inválidas")
	ErrQuantidadeInvalida      = errors.New("quantidade deve ser maior que zero")
	ErrPrecoInvalido           = errors.New("preço unitário deve ser maior que zero")
	ErrDataInvalida            = errors.New("data_venda inválida, use RFC 3339")
)
