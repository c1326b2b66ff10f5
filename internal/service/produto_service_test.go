package service_test

import (
	"context"
	"errors"
	"testing"

	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"
	"loja/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFornecedorRepo struct {
	fornecedores map[uuid.UUID]*model.Fornecedor
}

func (r *stubFornecedorRepo) Create(_ context.Context, f *model.Fornecedor) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return f, nil
}

func (r *stubFornecedorRepo) List(_ context.Context) ([]model.Fornecedor, error) { return nil, nil }
func (r *stubFornecedorRepo) Update(_ context.Context, _ *model.Fornecedor) error {
	return nil
}
func (r *stubFornecedorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.fornecedores, id)
	return nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

func buildProdutoSvc() (service.ProdutoService, *stubProdutoRepo, *stubFornecedorRepo) {
	produtoRepo := &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
	fornecedorRepo := &stubFornecedorRepo{fornecedores: make(map[uuid.UUID]*model.Fornecedor)}
	return service.NewProdutoService(produtoRepo, fornecedorRepo), produtoRepo, fornecedorRepo
}

func TestCriarProduto_ComFornecedor(t *testing.T) {
	svc, produtoRepo, fornecedorRepo := buildProdutoSvc()
	f := &model.Fornecedor{Nome: "Papelaria Central", CNPJ: "12.345.678/0001-90"}
	require.NoError(t, fornecedorRepo.Create(context.Background(), f))

	fid := f.ID.String()
	resp, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Caderno 96 folhas",
		Preco:        decimal.RequireFromString("9.50"),
		FornecedorID: &fid,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.FornecedorID)
	assert.Equal(t, fid, *resp.FornecedorID)
	assert.Len(t, produtoRepo.produtos, 1)
}

func TestCriarProduto_FornecedorInexistente(t *testing.T) {
	svc, produtoRepo, _ := buildProdutoSvc()

	fid := uuid.NewString()
	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:         "Caderno 96 folhas",
		Preco:        decimal.RequireFromString("9.50"),
		FornecedorID: &fid,
	})
	assert.ErrorIs(t, err, service.ErrFornecedorNaoEncontrado)
	assert.Empty(t, produtoRepo.produtos)
}

func TestAtualizarProduto_PrecoInvalido(t *testing.T) {
	svc, _, _ := buildProdutoSvc()
	resp, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:  "Caneta azul",
		Preco: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	zero := decimal.Zero
	_, err = svc.Atualizar(context.Background(), uuid.MustParse(resp.ID), dto.AtualizarProdutoRequest{Preco: &zero})
	assert.ErrorIs(t, err, service.ErrPrecoInvalido)
}

func TestAtualizarProduto_CamposParciais(t *testing.T) {
	svc, _, _ := buildProdutoSvc()
	created, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Nome:  "Caneta azul",
		Preco: decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	novoPreco := decimal.RequireFromString("3.50")
	updated, err := svc.Atualizar(context.Background(), uuid.MustParse(created.ID),
		dto.AtualizarProdutoRequest{Preco: &novoPreco})
	require.NoError(t, err)
	// Untouched fields keep their values.
	assert.Equal(t, "Caneta azul", updated.Nome)
	assert.Equal(t, "3.5", updated.Preco.String())
}

func TestRemoverProduto_NaoEncontrado(t *testing.T) {
	svc, _, _ := buildProdutoSvc()
	err := svc.Remover(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProdutoNaoEncontrado)
}
