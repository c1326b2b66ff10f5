package service

import (
	"context"
	"time"

	"loja/internal/config"
	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	RemoverUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(u *model.Usuario, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) CriarUsuario(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = usuarioToResponse(&u)
	}
	return resp, nil
}

func (s *authService) AtualizarUsuario(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	if req.Nome != nil {
		user.Nome = *req.Nome
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := usuarioToResponse(user)
	return &resp, nil
}

func (s *authService) RemoverUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.repo.Delete(ctx, id)
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID.String(), Nome: u.Nome, Email: u.Email}
}
