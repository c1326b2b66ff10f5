package service_test

import (
	"context"
	"errors"
	"testing"

	"loja/internal/config"
	"loja/internal/dto"
	"loja/internal/model"
	"loja/internal/repository"
	"loja/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, email, password string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{Nome: "Admin", Email: email, PasswordHash: string(hash)}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin_OK(t *testing.T) {
	repo := newStubUsuarioRepo()
	cfg := testConfig()
	svc := service.NewAuthService(repo, cfg)
	u := seedUsuario(t, repo, "admin@loja.com", "senha-forte")

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@loja.com", Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, u.ID.String(), resp.User.ID)

	// Token must verify with the configured secret and carry user claims.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "admin@loja.com", claims["email"])
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())
	seedUsuario(t, repo, "admin@loja.com", "senha-forte")

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@loja.com", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@loja.com", Password: "qualquer",
	})
	assert.ErrorIs(t, err, service.ErrCredenciaisInvalidas)
}

func TestCriarUsuario_HashSenha(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	resp, err := svc.CriarUsuario(context.Background(), dto.CriarUsuarioRequest{
		Nome: "Maria", Email: "maria@loja.com", Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@loja.com", resp.Email)

	stored, err := repo.FindByEmail(context.Background(), "maria@loja.com")
	require.NoError(t, err)
	// The plaintext password is never stored.
	assert.NotEqual(t, "senha-forte", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("senha-forte")))
}

func TestAtualizarUsuario_NaoEncontrado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())

	nome := "Novo Nome"
	_, err := svc.AtualizarUsuario(context.Background(), uuid.New(), dto.AtualizarUsuarioRequest{Nome: &nome})
	assert.ErrorIs(t, err, service.ErrUsuarioNaoEncontrado)
}

func TestRemoverUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, testConfig())
	u := seedUsuario(t, repo, "admin@loja.com", "senha-forte")

	require.NoError(t, svc.RemoverUsuario(context.Background(), u.ID))
	_, err := repo.FindByID(context.Background(), u.ID)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.RemoverUsuario(context.Background(), u.ID), service.ErrUsuarioNaoEncontrado)
}
