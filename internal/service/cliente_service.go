package service

import (
	"context"

	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Telefone != nil {
		c.Telefone = req.Telefone
	}
	if req.Endereco != nil {
		c.Endereco = req.Endereco
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrClienteNaoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       c.ID.String(),
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: c.Telefone,
		Endereco: c.Endereco,
	}
}
