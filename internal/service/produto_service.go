package service

import (
	"context"

	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"

	"github.com/google/uuid"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo           repository.ProdutoRepository
	fornecedorRepo repository.FornecedorRepository
}

func NewProdutoService(repo repository.ProdutoRepository, fornecedorRepo repository.FornecedorRepository) ProdutoService {
	return &produtoService{repo: repo, fornecedorRepo: fornecedorRepo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
	}
	if req.FornecedorID != nil {
		fid, err := s.resolveFornecedor(ctx, *req.FornecedorID)
		if err != nil {
			return nil, err
		}
		p.FornecedorID = fid
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProdutoResponse, len(produtos))
	for i := range produtos {
		resp[i] = produtoToResponse(&produtos[i])
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.Preco != nil {
		if !req.Preco.IsPositive() {
			return nil, ErrPrecoInvalido
		}
		p.Preco = *req.Preco
	}
	if req.FornecedorID != nil {
		fid, err := s.resolveFornecedor(ctx, *req.FornecedorID)
		if err != nil {
			return nil, err
		}
		p.FornecedorID = fid
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := produtoToResponse(p)
	return &resp, nil
}

func (s *produtoService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProdutoNaoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

// resolveFornecedor validates the supplier FK the same way GravarVenda
// validates its references: the fornecedor must exist before the write.
func (s *produtoService) resolveFornecedor(ctx context.Context, raw string) (*uuid.UUID, error) {
	fid, err := uuid.Parse(raw)
	if err != nil {
		return nil, ErrFornecedorNaoEncontrado
	}
	if _, err := s.fornecedorRepo.FindByID(ctx, fid); err != nil {
		return nil, ErrFornecedorNaoEncontrado
	}
	return &fid, nil
}

func produtoToResponse(p *model.Produto) dto.ProdutoResponse {
	var fornecedorID *string
	if p.FornecedorID != nil {
		s := p.FornecedorID.String()
		fornecedorID = &s
	}
	return dto.ProdutoResponse{
		ID:           p.ID.String(),
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		FornecedorID: fornecedorID,
	}
}
