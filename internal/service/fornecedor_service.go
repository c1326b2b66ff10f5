package service

import (
	"context"

	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"

	"github.com/google/uuid"
)

type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context) ([]dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f := &model.Fornecedor{
		Nome:  req.Nome,
		CNPJ:  req.CNPJ,
		Email: req.Email,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrFornecedorNaoEncontrado
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	fornecedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FornecedorResponse, len(fornecedores))
	for i := range fornecedores {
		resp[i] = fornecedorToResponse(&fornecedores[i])
	}
	return resp, nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrFornecedorNaoEncontrado
	}
	if req.Nome != nil {
		f.Nome = *req.Nome
	}
	if req.CNPJ != nil {
		f.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		f.Email = req.Email
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	resp := fornecedorToResponse(f)
	return &resp, nil
}

func (s *fornecedorService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrFornecedorNaoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func fornecedorToResponse(f *model.Fornecedor) dto.FornecedorResponse {
	return dto.FornecedorResponse{
		ID:    f.ID.String(),
		Nome:  f.Nome,
		CNPJ:  f.CNPJ,
		Email: f.Email,
	}
}
